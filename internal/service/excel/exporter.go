package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Dhanush8/workers-assignment/internal/model"
)

const (
	AssignmentsSheet = "Assignments"
	SummarySheet     = "Summary"
)

// Exporter 分配结果导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export 生成分配结果工作簿：分配明细 + 汇总
func (e *Exporter) Export(report *model.AssignmentReport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", AssignmentsSheet); err != nil {
		return nil, err
	}

	headers := []string{"Worker ID", "Task", "Skill Score", "Forced"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(AssignmentsSheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(AssignmentsSheet, 1, 1, headerStyle)

	for i, a := range report.Assignments {
		row := i + 2
		f.SetCellValue(AssignmentsSheet, fmt.Sprintf("A%d", row), a.WorkerID)
		f.SetCellValue(AssignmentsSheet, fmt.Sprintf("B%d", row), a.Task)
		f.SetCellValue(AssignmentsSheet, fmt.Sprintf("C%d", row), a.Score)
		if a.Forced {
			f.SetCellValue(AssignmentsSheet, fmt.Sprintf("D%d", row), "yes")
		}
	}

	totalRow := len(report.Assignments) + 2
	f.SetCellValue(AssignmentsSheet, fmt.Sprintf("B%d", totalRow), "Total")
	f.SetCellValue(AssignmentsSheet, fmt.Sprintf("C%d", totalRow), report.Total)
	totalStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetRowStyle(AssignmentsSheet, totalRow, totalRow, totalStyle)

	f.SetColWidth(AssignmentsSheet, "A", "B", 20)
	f.SetColWidth(AssignmentsSheet, "C", "D", 12)

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, err
	}
	summary := [][]interface{}{
		{"Item", "Value"},
		{"Strategy", string(report.Strategy)},
		{"Total Score", report.Total},
		{"Assignments", len(report.Assignments)},
		{"Absent Workers", len(report.AbsentWorkers)},
		{"Double-Book Limit", report.DoubleBookLimit},
		{"Degraded", report.Degraded},
	}
	for _, t := range report.UncoveredTasks {
		summary = append(summary, []interface{}{"Uncovered Task", t})
	}
	for i, row := range summary {
		for j, val := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue(SummarySheet, cell, val)
		}
	}
	f.SetRowStyle(SummarySheet, 1, 1, headerStyle)
	f.SetColWidth(SummarySheet, "A", "A", 20)

	return f, nil
}

// Write 导出并写入 w
func (e *Exporter) Write(report *model.AssignmentReport, w io.Writer) error {
	f, err := e.Export(report)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveAs 导出并保存到文件
func (e *Exporter) SaveAs(report *model.AssignmentReport, path string) error {
	f, err := e.Export(report)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
