// Package box holds all cli commands related to boxes
// e.g., stockbox box ...
package box

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli/styles"
	"github.com/thenoetrevino/stockbox/internal/models"
)

// BoxCmd returns the box parent command
func BoxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "box",
		Short: "Manage boxes",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

type boxView struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

func toView(b *models.Box) boxView {
	return boxView{ID: b.ID, Name: b.Name, Location: b.Location}
}

type boxResult struct {
	Box    boxView `json:"box"`
	action string
}

// GetID implements the GetID interface for quiet mode output
func (r *boxResult) GetID() int {
	return r.Box.ID
}

func (r *boxResult) Human() string {
	lines := []string{
		styles.TitleStyle.Render(fmt.Sprintf("✓ Box %s %s", models.StringValue(r.Box.Name), r.action)),
		"",
		styles.Field("ID", strconv.Itoa(r.Box.ID)),
		styles.Field("Location", models.StringValue(r.Box.Location)),
	}
	return strings.Join(lines, "\n") + "\n"
}

type boxListResult struct {
	Boxes []boxView `json:"boxes"`
	Count int       `json:"count"`
}

// GetIDs implements the GetIDs interface for quiet mode output
func (r *boxListResult) GetIDs() []int {
	ids := make([]int, 0, len(r.Boxes))
	for _, b := range r.Boxes {
		ids = append(ids, b.ID)
	}
	return ids
}

func (r *boxListResult) Human() string {
	if len(r.Boxes) == 0 {
		return styles.SubtitleStyle.Render("No boxes found") + "\n"
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Boxes (%d)", len(r.Boxes))))
	b.WriteString("\n")
	for _, box := range r.Boxes {
		line := fmt.Sprintf("  %s %s", styles.LabelStyle.Render(fmt.Sprintf("#%d", box.ID)),
			styles.ValueStyle.Render(models.StringValue(box.Name)))
		if box.Location != nil {
			line += " " + styles.SubtitleStyle.Render("@ "+*box.Location)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
