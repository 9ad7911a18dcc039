package tui

import (
	"fmt"
	"strings"
	"time"

	table "github.com/charmbracelet/bubbles/table"

	"campusmap/internal/location"
)

// refreshDetails rebuilds the details table from the selected location.
func (m *Model) refreshDetails() {
	l, ok := m.selected()
	if !ok {
		m.showAttrs = false
		m.setStatus("no location selected", false)
		return
	}
	rows := detailRows(l, m.reg.DisplayPath(l.ConnectedPath))
	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		trows = append(trows, table.Row{r[0], r[1]})
	}
	m.tbl.SetRows(trows)
}

func detailRows(l location.Location, paths string) [][2]string {
	dual := "no"
	if l.DualPathways {
		dual = "yes"
	}
	rows := [][2]string{
		{"id", l.ID},
		{"name", l.Name},
		{"building", l.Building},
		{"type", string(l.Type)},
		{"floor", l.Floor},
		{"category", string(l.Category)},
		{"access", string(l.AccessType)},
		{"pathways", paths},
		{"dual pathways", dual},
		{"coordinates", fmt.Sprintf("%.6f, %.6f", l.Latitude, l.Longitude)},
	}
	if l.Description != "" {
		rows = append(rows, [2]string{"description", l.Description})
	}
	if len(l.ImageURLs) > 0 {
		rows = append(rows, [2]string{"images", strings.Join(l.ImageURLs, ", ")})
	}
	rows = append(rows, [2]string{"created", stamp(l.CreatedAt)})
	if !l.UpdatedAt.IsZero() {
		rows = append(rows, [2]string{"updated", stamp(l.UpdatedAt)})
	}
	return rows
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
