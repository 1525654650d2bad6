package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/windowgram/pkg/split"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		})
}

// SplitTable lists the split records of a plan in execution order.
func SplitTable(p *split.Plan) string {
	t := newTable("#", "Link", "Parent", "Axis", "Size", "Percent", "Region")
	for i, s := range p.Splits {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(s.LinkID),
			strconv.Itoa(s.Parent),
			s.Axis.String(),
			fmt.Sprintf("%dx%d", s.W, s.H),
			fmt.Sprintf("%.2f%%", s.Percent),
			s.Region.String(),
		)
	}
	return t.Render()
}

// AssignmentTable lists which region each pane was linked to.
func AssignmentTable(p *split.Plan) string {
	t := newTable("Pane", "Link", "Index", "Canvas")
	for _, a := range p.Assignments {
		t.Row(
			string(a.Pane.ID),
			strconv.Itoa(a.LinkID),
			strconv.Itoa(a.Index),
			a.Canvas.String(),
		)
	}
	return t.Render()
}
