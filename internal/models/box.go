package models

// Box is a named storage container that groups products.
// Name and Location are optional; a nil pointer means "no value".
type Box struct {
	ID       int
	Name     *string
	Location *string
}

// NewBox creates an unsaved box; blank values are stored as no value
func NewBox(name, location string) *Box {
	return &Box{
		Name:     OptionalString(name),
		Location: OptionalString(location),
	}
}

// DisplayName returns the box name or an empty string
func (b *Box) DisplayName() string {
	return StringValue(b.Name)
}

// GetID implements the quiet-mode output contract
func (b *Box) GetID() int {
	return b.ID
}
