package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Dhanush8/workers-assignment/internal/model"
)

func sampleReport() *model.AssignmentReport {
	return &model.AssignmentReport{
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
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), FormatTable); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Worker ID", "Skill Score", "E01", "质检",
		"Total Maximized Skill Score: 23",
		"Strategy: greedy (double-book limit 1)",
		"Warning: coverage fallback",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTable_Uncovered(t *testing.T) {
	report := &model.AssignmentReport{Strategy: model.StrategyGreedy, Degraded: true, UncoveredTasks: []string{"喷涂"}}
	var buf bytes.Buffer
	if err := Render(&buf, report, ""); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), `task "喷涂"`) {
		t.Fatalf("uncovered warning missing:\n%s", buf.String())
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), FormatJSON); err != nil {
		t.Fatalf("Render: %v", err)
	}
	var got model.AssignmentReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if got.Total != 23 || len(got.Assignments) != 3 || !got.Assignments[2].Forced {
		t.Fatalf("unexpected report: %+v", got)
	}
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), FormatYAML); err != nil {
		t.Fatalf("Render: %v", err)
	}
	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if got["strategy"] != "greedy" || got["degraded"] != true {
		t.Fatalf("unexpected yaml: %v", got)
	}
	if !strings.Contains(buf.String(), "workerId: E01") {
		t.Fatalf("yaml keys should follow tags:\n%s", buf.String())
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, sampleReport(), "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
