package deployments

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable writes a formatted deployment report to w: running deployments
// first, everything else after, with a summary footer.
func RenderTable(w io.Writer, deployments []Deployment) {
	if len(deployments) == 0 {
		fmt.Fprintln(w, "No deployments found.")
		return
	}

	var running, rest []Deployment
	for _, d := range deployments {
		if d.Running() {
			running = append(running, d)
		} else {
			rest = append(rest, d)
		}
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Name", "Status", "Scenario", "Created", "Modified"})
	for _, d := range append(running, rest...) {
		tw.AppendRow(deploymentRow(d))
	}
	tw.AppendFooter(table.Row{"", "", fmt.Sprintf("%d running, %d other", len(running), len(rest)), "", "", ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Status", Transformer: statusColor},
	})
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Footer = text.FormatDefault
	tw.Render()

	// Quick reference for copying into inference configuration.
	if len(running) > 0 {
		fmt.Fprintln(w, "\nRunning deployment IDs:")
		for _, d := range running {
			fmt.Fprintf(w, "  %-25s # %s\n", d.ID, d.ConfigurationName)
		}
	}
}

func deploymentRow(d Deployment) table.Row {
	return table.Row{
		d.ID,
		d.ConfigurationName,
		d.Status,
		d.ScenarioID,
		formatTime(d.CreatedAt),
		formatTime(d.ModifiedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func statusColor(val interface{}) string {
	status, ok := val.(string)
	if !ok {
		return fmt.Sprint(val)
	}
	switch status {
	case StatusRunning:
		return text.FgGreen.Sprint(status)
	case StatusDead:
		return text.FgRed.Sprint(status)
	default:
		return status
	}
}
