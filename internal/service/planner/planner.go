package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/Dhanush8/workers-assignment/internal/logx"
	"github.com/Dhanush8/workers-assignment/internal/metrics"
	"github.com/Dhanush8/workers-assignment/internal/model"
	"github.com/Dhanush8/workers-assignment/internal/service/assigner"
)

// ErrLabelMismatch 员工编号或任务名称数量与矩阵不一致
var ErrLabelMismatch = errors.New("labels do not match skill matrix")

// Request 一次分配请求
type Request struct {
	Roster *model.Roster
	Absent []string
	// AbsentCount 显式缺勤人数；为 nil 时取去重后的 Absent 数量
	AbsentCount *int
}

// Plan 分配结果及其来源
type Plan struct {
	Report    *model.AssignmentReport
	Result    *model.Result
	Unmatched []string // 名册中不存在的缺勤编号
}

// Planner 剔除缺勤员工、执行分配并生成报告
type Planner struct {
	assigner *assigner.Assigner
}

// New 创建 Planner
func New(policy assigner.Policy) *Planner {
	return &Planner{assigner: assigner.New(policy)}
}

// Plan 执行分配
func (p *Planner) Plan(req Request) (*Plan, error) {
	r := req.Roster
	if r == nil {
		return nil, fmt.Errorf("%w: roster is nil", ErrLabelMismatch)
	}
	if len(r.WorkerIDs) != len(r.Matrix) {
		return nil, fmt.Errorf("%w: %d worker ids for %d rows", ErrLabelMismatch, len(r.WorkerIDs), len(r.Matrix))
	}
	if _, tasks := r.Matrix.Dims(); len(r.Matrix) > 0 && len(r.TaskNames) != tasks {
		return nil, fmt.Errorf("%w: %d task names for %d columns", ErrLabelMismatch, len(r.TaskNames), tasks)
	}

	present, absent, unmatched := r.Without(req.Absent)
	if len(unmatched) > 0 {
		logx.Log.Warn().Strs("ids", unmatched).Msg("absent workers not on roster")
	}

	absentCount := len(absent)
	if req.AbsentCount != nil {
		absentCount = *req.AbsentCount
	}

	start := time.Now()
	result, err := p.assigner.Assign(present.Matrix, absentCount)
	if err != nil {
		metrics.RecordAssignmentError()
		return nil, err
	}
	forced := len(result.ForcedPairs())
	metrics.RecordAssignment(string(result.Strategy), result.Degraded, forced, time.Since(start))

	report, err := assigner.Label(result, present.WorkerIDs, present.TaskNames, absent)
	if err != nil {
		return nil, err
	}

	event := logx.Log.Info()
	if result.Degraded {
		event = logx.Log.Warn().Int("forced", forced).Ints("uncovered", result.Uncovered)
	}
	event.Str("roster", r.ID).
		Str("strategy", string(result.Strategy)).
		Int("workers", len(present.WorkerIDs)).
		Int("tasks", len(present.TaskNames)).
		Int("absent", absentCount).
		Float64("total", result.Total).
		Msg("assignment planned")

	return &Plan{Report: report, Result: result, Unmatched: unmatched}, nil
}

// FromMatrix 用矩阵和可选标签构造名册，标签缺省为 W1.. / T1..
func FromMatrix(matrix model.SkillMatrix, workers, tasks []string) (*model.Roster, error) {
	rows, cols := matrix.Dims()
	if len(workers) == 0 {
		workers = defaultLabels("W", rows)
	}
	if len(tasks) == 0 {
		tasks = defaultLabels("T", cols)
	}
	if len(workers) != rows {
		return nil, fmt.Errorf("%w: %d worker ids for %d rows", ErrLabelMismatch, len(workers), rows)
	}
	if rows > 0 && len(tasks) != cols {
		return nil, fmt.Errorf("%w: %d task names for %d columns", ErrLabelMismatch, len(tasks), cols)
	}
	return &model.Roster{
		ID:         "inline",
		WorkerIDs:  workers,
		TaskNames:  tasks,
		Matrix:     matrix,
		ImportedAt: time.Now(),
	}, nil
}

func defaultLabels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}
