package excel_test

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Dhanush8/workers-assignment/internal/service/excel"
)

// buildMultiSheetWorkbook 按顺序创建多个工作表
func buildMultiSheetWorkbook(t *testing.T, names []string, sheets map[string][][]interface{}) *excelize.File {
	t.Helper()

	wb := excelize.NewFile()
	for i, name := range names {
		if i == 0 {
			if err := wb.SetSheetName(wb.GetSheetName(0), name); err != nil {
				t.Fatalf("SetSheetName %s failed: %v", name, err)
			}
		} else if _, err := wb.NewSheet(name); err != nil {
			t.Fatalf("NewSheet %s failed: %v", name, err)
		}
		for r, row := range sheets[name] {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			rr := row
			if err := wb.SetSheetRow(name, cell, &rr); err != nil {
				t.Fatalf("SetSheetRow %s!%s failed: %v", name, cell, err)
			}
		}
	}
	return wb
}

func TestRecognizeWorkbook(t *testing.T) {
	wb := buildMultiSheetWorkbook(t, []string{"说明", "Skills", "备注"}, map[string][][]interface{}{
		"说明": {
			{"本表用于排班"},
			{"请勿修改表头"},
		},
		"Skills": {
			{"Worker ID", "焊接", "装配"},
			{"E01", 5, 3},
			{"E02", 0, "1,200"},
		},
		"备注": {
			{"员工编号", "说明"},
			{"E01", "请假"},
		},
	})

	rec := excel.NewRecognizer()
	infos := rec.RecognizeWorkbook(wb)
	if len(infos) != 3 {
		t.Fatalf("infos=%+v", infos)
	}
	byName := make(map[string]float64)
	for _, info := range infos {
		byName[info.Name] = info.Score
	}
	if byName["Skills"] != 1.0 {
		t.Fatalf("Skills score=%v, want 1", byName["Skills"])
	}
	if byName["说明"] >= excel.MinSkillSheetScore {
		t.Fatalf("说明 score=%v should be below threshold", byName["说明"])
	}
	// 表头像名册但数据不是数字
	if got := byName["备注"]; got < 0.6 || got > 0.7 {
		t.Fatalf("备注 score=%v, want 2/3", got)
	}
	if infos[0].Name != "说明" || len(infos[0].MissingFields) == 0 {
		t.Fatalf("first sheet=%+v", infos[0])
	}

	if got := rec.DetectSkillSheet(wb); got != "Skills" {
		t.Fatalf("DetectSkillSheet=%q, want Skills", got)
	}
}

func TestParseRoster_DetectsSkillSheet(t *testing.T) {
	wb := buildMultiSheetWorkbook(t, []string{"封面", "技能表"}, map[string][][]interface{}{
		"封面": {{"2026 年度排班"}},
		"技能表": {
			{"工号", "A", "B"},
			{"E01", 1, 2},
		},
	})

	roster, err := excel.ParseRoster(wb, excel.ParseOptions{})
	if err != nil {
		t.Fatalf("ParseRoster: %v", err)
	}
	if roster.Sheet != "技能表" || len(roster.WorkerIDs) != 1 {
		t.Fatalf("roster=%+v", roster)
	}
}

func TestDetectSkillSheet_None(t *testing.T) {
	wb := buildMultiSheetWorkbook(t, []string{"Sheet1"}, map[string][][]interface{}{
		"Sheet1": {{"hello"}},
	})
	if got := excel.NewRecognizer().DetectSkillSheet(wb); got != "" {
		t.Fatalf("DetectSkillSheet=%q, want empty", got)
	}
}
