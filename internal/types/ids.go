package types

// ProductID identifies a stored product. Zero is never a valid stored
// identifier; repositories use it as the "does not exist" sentinel.
type ProductID int

// ToInt converts type alias back to int for database bindings
func (id ProductID) ToInt() int {
	return int(id)
}

// Valid reports whether the id could reference a stored row
func (id ProductID) Valid() bool {
	return id > 0
}
