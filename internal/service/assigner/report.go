package assigner

import (
	"fmt"

	"github.com/Dhanush8/workers-assignment/internal/model"
)

// Label 将行列号映射为员工编号与任务名称，生成对外报告
func Label(result *model.Result, workerIDs, taskNames []string, absent []string) (*model.AssignmentReport, error) {
	report := &model.AssignmentReport{
		Strategy:        result.Strategy,
		Assignments:     make([]model.LabeledPair, 0, len(result.Pairs)),
		Total:           result.Total,
		AbsentWorkers:   absent,
		DoubleBookLimit: result.DoubleBookLimit,
		Degraded:        result.Degraded,
	}

	for _, p := range result.Pairs {
		if p.Worker >= len(workerIDs) || p.Task >= len(taskNames) {
			return nil, fmt.Errorf("pair (%d,%d) out of range for %d workers / %d tasks", p.Worker, p.Task, len(workerIDs), len(taskNames))
		}
		report.Assignments = append(report.Assignments, model.LabeledPair{
			WorkerID: workerIDs[p.Worker],
			Task:     taskNames[p.Task],
			Score:    p.Score,
			Forced:   p.Forced,
		})
	}
	for _, t := range result.Uncovered {
		if t < len(taskNames) {
			report.UncoveredTasks = append(report.UncoveredTasks, taskNames[t])
		}
	}
	return report, nil
}
