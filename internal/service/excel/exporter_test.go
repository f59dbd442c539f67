package excel_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Dhanush8/workers-assignment/internal/model"
	"github.com/Dhanush8/workers-assignment/internal/service/excel"
)

func TestExporterWrite(t *testing.T) {
	report := &model.AssignmentReport{
		Strategy: model.StrategyGreedy,
		Assignments: []model.LabeledPair{
			{WorkerID: "E01", Task: "焊接", Score: 9},
			{WorkerID: "E02", Task: "装配", Score: 8},
			{WorkerID: "E01", Task: "质检", Score: 6, Forced: true},
		},
		Total:           23,
		AbsentWorkers:   []string{"E03", "E04", "E05"},
		DoubleBookLimit: 1,
		Degraded:        true,
	}

	var buf bytes.Buffer
	if err := excel.NewExporter().Write(report, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	wb, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(excel.AssignmentsSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("rows=%d, want header + 3 + total", len(rows))
	}
	if rows[1][0] != "E01" || rows[1][1] != "焊接" || rows[1][2] != "9" {
		t.Fatalf("row 2=%v", rows[1])
	}
	if len(rows[3]) < 4 || rows[3][3] != "yes" {
		t.Fatalf("forced flag missing: %v", rows[3])
	}
	if rows[4][1] != "Total" || rows[4][2] != "23" {
		t.Fatalf("total row=%v", rows[4])
	}

	strategy, _ := wb.GetCellValue(excel.SummarySheet, "B2")
	if strategy != "greedy" {
		t.Fatalf("strategy=%q", strategy)
	}
	degraded, _ := wb.GetCellValue(excel.SummarySheet, "B7")
	if degraded != "TRUE" {
		t.Fatalf("degraded=%q", degraded)
	}
}
