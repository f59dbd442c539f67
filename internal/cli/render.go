package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/Dhanush8/workers-assignment/internal/model"
	"github.com/Dhanush8/workers-assignment/internal/util"
)

// 输出格式
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	forcedStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FFB347"))
	totalStyle  = lipgloss.NewStyle().Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// Render 按格式输出分配报告
func Render(w io.Writer, report *model.AssignmentReport, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, "":
		return renderTable(w, report)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderTable(w io.Writer, report *model.AssignmentReport) error {
	forced := make(map[int]bool)
	rows := make([][]string, 0, len(report.Assignments))
	for i, a := range report.Assignments {
		rows = append(rows, []string{a.WorkerID, a.Task, util.FormatScore(a.Score)})
		if a.Forced {
			forced[i] = true
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))).
		Headers("Worker ID", "Task", "Skill Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if forced[row] {
				return forcedStyle
			}
			return cellStyle
		})

	if _, err := fmt.Fprintln(w, "\nWorker Task Assignments and Skill Scores:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	fmt.Fprintln(w, totalStyle.Render(fmt.Sprintf("\nTotal Maximized Skill Score: %s", util.FormatScore(report.Total))))
	fmt.Fprintf(w, "Strategy: %s", report.Strategy)
	if report.Strategy == model.StrategyGreedy {
		fmt.Fprintf(w, " (double-book limit %d)", report.DoubleBookLimit)
	}
	fmt.Fprintln(w)

	if report.Degraded {
		fmt.Fprintln(w, warnStyle.Render("Warning: coverage fallback assigned tasks beyond the double-booking limit (highlighted rows)."))
	}
	for _, task := range report.UncoveredTasks {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Warning: no worker has a positive score for task %q; left unassigned.", task)))
	}
	return nil
}
