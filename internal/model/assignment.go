package model

// SkillMatrix 技能矩阵：行 = 员工，列 = 任务，值为非负技能分（0 表示不适合）
type SkillMatrix [][]float64

// Dims 返回 (员工数, 任务数)
func (m SkillMatrix) Dims() (workers, tasks int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Strategy 分配策略
type Strategy string

const (
	StrategyNone    Strategy = "none"    // 无员工或无任务
	StrategyOptimal Strategy = "optimal" // 匈牙利算法最优匹配
	StrategyGreedy  Strategy = "greedy"  // 带兼岗上限的贪心分配
)

// Pair 单条分配：员工行号、任务列号及对应技能分
type Pair struct {
	Worker int     `json:"worker" yaml:"worker"`
	Task   int     `json:"task" yaml:"task"`
	Score  float64 `json:"score" yaml:"score"`
	Forced bool    `json:"forced,omitempty" yaml:"forced,omitempty"` // 兜底阶段强制分配，忽略兼岗上限
}

// WorkerLoad 员工负载快照（不可变，每次分配后整体替换）
type WorkerLoad struct {
	Tasks      []int   `json:"tasks"`
	TotalScore float64 `json:"totalScore"`
}

// With 返回追加一个任务后的新快照
func (w WorkerLoad) With(task int, score float64) WorkerLoad {
	tasks := make([]int, len(w.Tasks), len(w.Tasks)+1)
	copy(tasks, w.Tasks)
	return WorkerLoad{
		Tasks:      append(tasks, task),
		TotalScore: w.TotalScore + score,
	}
}

// Result 分配结果
type Result struct {
	Strategy Strategy `json:"strategy" yaml:"strategy"`
	Pairs    []Pair   `json:"pairs" yaml:"pairs"`
	Total    float64  `json:"total" yaml:"total"`

	// 仅贪心策略有效
	DoubleBookLimit int   `json:"doubleBookLimit" yaml:"doubleBookLimit"`
	DoubleBooked    int   `json:"doubleBooked" yaml:"doubleBooked"`
	Degraded        bool  `json:"degraded" yaml:"degraded"`
	Uncovered       []int `json:"uncovered,omitempty" yaml:"uncovered,omitempty"`
}

// ForcedPairs 返回兜底阶段强制分配的记录
func (r *Result) ForcedPairs() []Pair {
	var out []Pair
	for _, p := range r.Pairs {
		if p.Forced {
			out = append(out, p)
		}
	}
	return out
}

// TaskCounts 统计每个员工分到的任务数
func (r *Result) TaskCounts() map[int]int {
	counts := make(map[int]int)
	for _, p := range r.Pairs {
		counts[p.Worker]++
	}
	return counts
}
