package product

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/stockbox/internal/cli/styles"
	"github.com/thenoetrevino/stockbox/internal/models"
	productservice "github.com/thenoetrevino/stockbox/internal/services/product"
)

const boxHint = "pass --create-box to create the box"

// productView is the output shape of a single product
type productView struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Category *string `json:"category"`
	BoxID    *int    `json:"box_id"`
	Box      *string `json:"box"`
	Location *string `json:"location"`
}

func toView(p *models.Product) productView {
	return productView{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: p.Quantity,
		Category: p.Category,
		BoxID:    p.BoxID,
		Box:      p.BoxName,
		Location: p.Location,
	}
}

// productResult is returned by commands that write one product
type productResult struct {
	Product productView `json:"product"`
	action  string
}

// GetID implements the GetID interface for quiet mode output
func (r *productResult) GetID() int {
	return r.Product.ID
}

// Human renders the product as a small card
func (r *productResult) Human() string {
	p := r.Product
	lines := []string{
		styles.TitleStyle.Render(fmt.Sprintf("✓ Product %s %s", p.Name, r.action)),
		"",
		styles.Field("ID", strconv.Itoa(p.ID)),
		styles.Field("Quantity", strconv.Itoa(p.Quantity)),
		styles.Field("Category", orDash(p.Category)),
		styles.Field("Box", orDash(p.Box)),
		styles.Field("Location", orDash(p.Location)),
	}
	return styles.RenderCard(strings.Join(lines, "\n")) + "\n"
}

// productListResult is returned by list and search
type productListResult struct {
	Products []productView `json:"products"`
	Count    int           `json:"count"`
}

func newListResult(products []*models.Product) *productListResult {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toView(p))
	}
	return &productListResult{Products: views, Count: len(views)}
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *productListResult) GetIDs() []int {
	ids := make([]int, 0, len(r.Products))
	for _, p := range r.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

// Human renders the products as aligned columns
func (r *productListResult) Human() string {
	if len(r.Products) == 0 {
		return styles.SubtitleStyle.Render("No products found") + "\n"
	}

	headers := []string{"ID", "Name", "Qty", "Category", "Box", "Location"}
	rows := make([][]string, 0, len(r.Products))
	for _, p := range r.Products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Name,
			strconv.Itoa(p.Quantity),
			models.StringValue(p.Category),
			models.StringValue(p.Box),
			models.StringValue(p.Location),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len([]rune(cell)))
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(styles.PadRight(styles.LabelStyle.Render(h), widths[i]+2))
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(styles.PadRight(styles.ValueStyle.Render(cell), widths[i]+2))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%d product(s)", len(r.Products))))
	b.WriteString("\n")
	return b.String()
}

// idsResult is returned by commands that touch a set of products
type idsResult struct {
	IDs    []int `json:"ids"`
	Count  int   `json:"count"`
	action string
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *idsResult) GetIDs() []int {
	return r.IDs
}

func (r *idsResult) Human() string {
	return styles.TitleStyle.Render(fmt.Sprintf("✓ %s %d product(s)", r.action, r.Count)) + "\n"
}

// choicesResult lists the values offered by the search filters
type choicesResult struct {
	*productservice.FilterChoices
}

func (r *choicesResult) Human() string {
	var b strings.Builder
	section := func(title string, values []string) {
		b.WriteString(styles.SectionStyle.Render(title))
		b.WriteString("\n")
		if len(values) == 0 {
			b.WriteString(styles.SubtitleStyle.Render("  (none)"))
			b.WriteString("\n")
			return
		}
		for _, v := range values {
			b.WriteString("  " + styles.ValueStyle.Render(v) + "\n")
		}
	}
	section("Categories", r.Categories)
	section("Locations", r.Locations)
	section("Boxes", r.Boxes)
	return b.String()
}

func orDash(s *string) string {
	if v := models.StringValue(s); v != "" {
		return v
	}
	return "-"
}
