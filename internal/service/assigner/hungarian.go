package assigner

import (
	"math"

	"github.com/Dhanush8/workers-assignment/internal/model"
)

// Optimal 最大权二分匹配（Kuhn–Munkres），每个员工至多一个任务。
// 员工数 >= 任务数时每个任务都会被分配；否则多出的任务不分配。
func Optimal(matrix model.SkillMatrix) (*model.Result, error) {
	if err := Validate(matrix); err != nil {
		return nil, err
	}
	workers, tasks := matrix.Dims()
	if workers == 0 || tasks == 0 {
		return &model.Result{Strategy: model.StrategyOptimal, Pairs: []model.Pair{}}, nil
	}
	return optimal(matrix), nil
}

func optimal(matrix model.SkillMatrix) *model.Result {
	workers, tasks := matrix.Dims()
	rowTask := hungarian(matrix, workers, tasks)

	result := &model.Result{
		Strategy: model.StrategyOptimal,
		Pairs:    make([]model.Pair, 0, tasks),
	}
	for w, t := range rowTask {
		if t < 0 {
			continue
		}
		score := matrix[w][t]
		result.Pairs = append(result.Pairs, model.Pair{Worker: w, Task: t, Score: score})
		result.Total += score
	}
	return result
}

// hungarian 在取负后的代价矩阵上求最小代价完美匹配。
// 矩阵补成 dim×dim 方阵，补位代价为 0；返回 rowTask[w] = 任务列号，未分配或补位列为 -1。
func hungarian(matrix model.SkillMatrix, workers, tasks int) []int {
	dim := workers
	if tasks > dim {
		dim = tasks
	}
	cost := func(i, j int) float64 {
		if i < workers && j < tasks {
			return -matrix[i][j]
		}
		return 0
	}

	// 1-indexed，下标 0 为虚拟列
	const inf = math.MaxFloat64 / 2
	u := make([]float64, dim+1)
	v := make([]float64, dim+1)
	p := make([]int, dim+1)   // p[j] 列 j 匹配的行
	way := make([]int, dim+1) // 增广路径上的前驱列
	minv := make([]float64, dim+1)
	used := make([]bool, dim+1)

	for i := 1; i <= dim; i++ {
		p[0] = i
		j0 := 0
		for j := 1; j <= dim; j++ {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := 0
			for j := 1; j <= dim; j++ {
				if used[j] {
					continue
				}
				cur := cost(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= dim; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowTask := make([]int, workers)
	for i := range rowTask {
		rowTask[i] = -1
	}
	for j := 1; j <= dim; j++ {
		if p[j] > 0 && p[j] <= workers && j <= tasks {
			rowTask[p[j]-1] = j - 1
		}
	}
	return rowTask
}
