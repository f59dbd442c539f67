package assigner

import (
	"fmt"

	"github.com/Dhanush8/workers-assignment/internal/logx"
	"github.com/Dhanush8/workers-assignment/internal/model"
)

// DefaultDoubleBookOffset 兼岗人数上限 = 缺勤人数 - 该偏移量
const DefaultDoubleBookOffset = 2

// Policy 兼岗策略
type Policy struct {
	// DoubleBookOffset 兼岗上限相对缺勤人数的偏移，必须使上限严格小于缺勤人数
	DoubleBookOffset int `json:"doubleBookOffset" toml:"double_book_offset"`
}

// DefaultPolicy 默认策略
func DefaultPolicy() Policy {
	return Policy{DoubleBookOffset: DefaultDoubleBookOffset}
}

// DoubleBookLimit 计算可兼岗员工数上限，结果不小于 0
func (p Policy) DoubleBookLimit(absentCount int) int {
	offset := p.DoubleBookOffset
	if offset < 1 {
		offset = 1
	}
	limit := absentCount - offset
	if limit < 0 {
		return 0
	}
	return limit
}

// Assigner 任务分配调度器：按员工数与任务数选择算法
type Assigner struct {
	policy Policy
}

// New 创建调度器
func New(policy Policy) *Assigner {
	return &Assigner{policy: policy}
}

// Policy 返回当前策略
func (a *Assigner) Policy() Policy {
	return a.policy
}

// Assign 执行分配
//   - 员工数 >= 任务数：匈牙利算法求全局最优
//   - 员工数 < 任务数：贪心分配，允许有限员工兼岗
func (a *Assigner) Assign(matrix model.SkillMatrix, absentCount int) (*model.Result, error) {
	if err := Validate(matrix); err != nil {
		return nil, err
	}
	if absentCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAbsentCount, absentCount)
	}

	workers, tasks := matrix.Dims()
	if workers == 0 || tasks == 0 {
		return &model.Result{Strategy: model.StrategyNone, Pairs: []model.Pair{}}, nil
	}

	if workers >= tasks {
		logx.Log.Debug().Int("workers", workers).Int("tasks", tasks).Msg("dispatch optimal")
		return optimal(matrix), nil
	}

	logx.Log.Debug().Int("workers", workers).Int("tasks", tasks).Int("absent", absentCount).Msg("dispatch greedy")
	return greedy(matrix, a.policy.DoubleBookLimit(absentCount)), nil
}

// Assign 使用默认策略执行分配
func Assign(matrix model.SkillMatrix, absentCount int) (*model.Result, error) {
	return New(DefaultPolicy()).Assign(matrix, absentCount)
}
