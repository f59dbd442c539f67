package assigner

import (
	"container/heap"
	"fmt"

	"github.com/Dhanush8/workers-assignment/internal/model"
)

// candidate 候选 (员工, 任务) 组合
type candidate struct {
	worker int
	task   int
	score  float64
}

// candidateHeap 大顶堆：分数高者优先，同分按员工号、任务号升序
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	if h[i].worker != h[j].worker {
		return h[i].worker < h[j].worker
	}
	return h[i].task < h[j].task
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// Greedy 任务多于员工时的贪心分配，按分数降序逐个落位，不保证全局最优。
func Greedy(matrix model.SkillMatrix, absentCount int, policy Policy) (*model.Result, error) {
	if err := Validate(matrix); err != nil {
		return nil, err
	}
	if absentCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAbsentCount, absentCount)
	}
	limit := policy.DoubleBookLimit(absentCount)
	workers, tasks := matrix.Dims()
	if workers == 0 || tasks == 0 {
		return &model.Result{Strategy: model.StrategyGreedy, Pairs: []model.Pair{}, DoubleBookLimit: limit}, nil
	}
	return greedy(matrix, limit), nil
}

// greedyState 单次贪心分配的全部状态
type greedyState struct {
	matrix       model.SkillMatrix
	ledger       map[int]model.WorkerLoad
	assigned     map[int]bool
	doubleBooked int
	result       *model.Result
}

func (s *greedyState) assign(worker, task int, forced bool) {
	score := s.matrix[worker][task]
	load := s.ledger[worker].With(task, score)
	s.ledger[worker] = load
	s.assigned[task] = true
	s.result.Pairs = append(s.result.Pairs, model.Pair{Worker: worker, Task: task, Score: score, Forced: forced})
	s.result.Total += score
	if len(load.Tasks) == 2 {
		s.doubleBooked++
	}
}

func greedy(matrix model.SkillMatrix, limit int) *model.Result {
	workers, tasks := matrix.Dims()

	h := make(candidateHeap, 0, workers*tasks)
	for w := 0; w < workers; w++ {
		for t := 0; t < tasks; t++ {
			if matrix[w][t] > 0 {
				h = append(h, candidate{worker: w, task: t, score: matrix[w][t]})
			}
		}
	}
	heap.Init(&h)

	s := &greedyState{
		matrix:   matrix,
		ledger:   make(map[int]model.WorkerLoad, workers),
		assigned: make(map[int]bool, tasks),
		result: &model.Result{
			Strategy:        model.StrategyGreedy,
			Pairs:           make([]model.Pair, 0, tasks),
			DoubleBookLimit: limit,
		},
	}

	for len(s.assigned) < tasks && h.Len() > 0 {
		c := heap.Pop(&h).(candidate)
		if s.assigned[c.task] || c.score == 0 {
			continue
		}

		held := len(s.ledger[c.worker].Tasks)
		capacity := 1
		if held == 0 && s.doubleBooked < limit {
			capacity = 2
		}
		if held < capacity {
			s.assign(c.worker, c.task, false)
		}
	}

	if len(s.assigned) < tasks {
		s.fallback(workers, tasks)
	}

	s.result.DoubleBooked = s.doubleBooked
	return s.result
}

// fallback 堆耗尽仍有任务未分配时，按员工、任务序号轮询强制分配，忽略兼岗上限。
// 每轮每个员工至多接一个任务；某轮无任何分配时停止，剩余任务记为未覆盖。
func (s *greedyState) fallback(workers, tasks int) {
	s.result.Degraded = true
	for len(s.assigned) < tasks {
		progressed := false
		for w := 0; w < workers; w++ {
			for t := 0; t < tasks; t++ {
				if !s.assigned[t] && s.matrix[w][t] > 0 {
					s.assign(w, t, true)
					progressed = true
					break
				}
			}
		}
		if !progressed {
			break
		}
	}
	for t := 0; t < tasks; t++ {
		if !s.assigned[t] {
			s.result.Uncovered = append(s.result.Uncovered, t)
		}
	}
}
