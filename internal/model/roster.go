package model

import (
	"strings"
	"time"
)

// Roster 员工技能名册：WorkerIDs 对齐矩阵行，TaskNames 对齐矩阵列
type Roster struct {
	ID         string      `json:"id"`
	FileName   string      `json:"fileName,omitempty"`
	Sheet      string      `json:"sheet,omitempty"`
	WorkerIDs  []string    `json:"workerIds"`
	TaskNames  []string    `json:"taskNames"`
	Matrix     SkillMatrix `json:"matrix"`
	ImportedAt time.Time   `json:"importedAt"`
}

// LabeledPair 带员工编号与任务名称的分配记录
type LabeledPair struct {
	WorkerID string  `json:"workerId" yaml:"workerId"`
	Task     string  `json:"task" yaml:"task"`
	Score    float64 `json:"score" yaml:"score"`
	Forced   bool    `json:"forced,omitempty" yaml:"forced,omitempty"`
}

// AssignmentReport 对外输出的分配报告
type AssignmentReport struct {
	Strategy        Strategy      `json:"strategy" yaml:"strategy"`
	Assignments     []LabeledPair `json:"assignments" yaml:"assignments"`
	Total           float64       `json:"total" yaml:"total"`
	AbsentWorkers   []string      `json:"absentWorkers,omitempty" yaml:"absentWorkers,omitempty"`
	DoubleBookLimit int           `json:"doubleBookLimit" yaml:"doubleBookLimit"`
	Degraded        bool          `json:"degraded" yaml:"degraded"`
	UncoveredTasks  []string      `json:"uncoveredTasks,omitempty" yaml:"uncoveredTasks,omitempty"`
}

// Without 剔除缺勤员工，返回新名册与名册中不存在的缺勤编号。
// 缺勤编号去重后全部计入缺勤人数，即使名册中没有对应行。
func (r *Roster) Without(absent []string) (*Roster, []string, []string) {
	absentSet := make(map[string]bool, len(absent))
	normalized := make([]string, 0, len(absent))
	for _, id := range absent {
		id = strings.TrimSpace(id)
		if id == "" || absentSet[id] {
			continue
		}
		absentSet[id] = true
		normalized = append(normalized, id)
	}

	out := &Roster{
		ID:         r.ID,
		FileName:   r.FileName,
		Sheet:      r.Sheet,
		TaskNames:  r.TaskNames,
		ImportedAt: r.ImportedAt,
		WorkerIDs:  make([]string, 0, len(r.WorkerIDs)),
		Matrix:     make(SkillMatrix, 0, len(r.Matrix)),
	}
	matched := make(map[string]bool, len(normalized))
	for i, id := range r.WorkerIDs {
		if absentSet[id] {
			matched[id] = true
			continue
		}
		out.WorkerIDs = append(out.WorkerIDs, id)
		out.Matrix = append(out.Matrix, r.Matrix[i])
	}

	var unmatched []string
	for _, id := range normalized {
		if !matched[id] {
			unmatched = append(unmatched, id)
		}
	}
	return out, normalized, unmatched
}

// ParseIDList 解析逗号分隔的编号列表
func ParseIDList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
