package assigner

import (
	"math/rand"
	"testing"

	"github.com/Dhanush8/workers-assignment/internal/model"
)

// TestOptimalConcreteScenario 3 名员工 2 个任务，最优总分 13
func TestOptimalConcreteScenario(t *testing.T) {
	matrix := model.SkillMatrix{
		{5, 0},
		{0, 8},
		{3, 3},
	}

	r, err := Assign(matrix, 0)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if r.Strategy != model.StrategyOptimal {
		t.Fatalf("Strategy=%s", r.Strategy)
	}
	checkResult(t, matrix, r)

	if !floatEquals(r.Total, 13) {
		t.Fatalf("Total=%v, want 13", r.Total)
	}
	if best := bruteForceBest(matrix); !floatEquals(best, 13) {
		t.Fatalf("brute force best=%v, want 13", best)
	}

	want := map[int]int{0: 0, 1: 1}
	for _, p := range r.Pairs {
		if want[p.Task] != p.Worker {
			t.Errorf("task %d -> worker %d, want worker %d", p.Task, p.Worker, want[p.Task])
		}
	}
}

// TestOptimalMatchesBruteForce 随机小矩阵与穷举结果比对
func TestOptimalMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		tasks := rng.Intn(5) + 1
		workers := tasks + rng.Intn(3)
		matrix := randomMatrix(rng, workers, tasks)

		r, err := Optimal(matrix)
		if err != nil {
			t.Fatalf("Optimal: %v", err)
		}
		checkResult(t, matrix, r)

		if len(r.Pairs) != tasks {
			t.Fatalf("iter %d: %d pairs for %d tasks", iter, len(r.Pairs), tasks)
		}
		perWorker := r.TaskCounts()
		for w, n := range perWorker {
			if n > 1 {
				t.Fatalf("iter %d: worker %d has %d tasks", iter, w, n)
			}
		}
		if best := bruteForceBest(matrix); !floatEquals(r.Total, best) {
			t.Fatalf("iter %d: Total=%v, brute force=%v, matrix=%v", iter, r.Total, best, matrix)
		}
	}
}

// TestOptimalAssignsZeroScoreTasks 全零列也必须被分配
func TestOptimalAssignsZeroScoreTasks(t *testing.T) {
	matrix := model.SkillMatrix{
		{4, 0},
		{2, 0},
	}

	r, err := Optimal(matrix)
	if err != nil {
		t.Fatalf("Optimal: %v", err)
	}
	checkResult(t, matrix, r)
	if len(r.Pairs) != 2 {
		t.Fatalf("pairs=%d, want 2", len(r.Pairs))
	}
	if !floatEquals(r.Total, 4) {
		t.Fatalf("Total=%v, want 4", r.Total)
	}
}

// TestOptimalDeterministic 同一输入多次运行结果一致
func TestOptimalDeterministic(t *testing.T) {
	matrix := model.SkillMatrix{
		{3, 3, 3},
		{3, 3, 3},
		{3, 3, 3},
		{3, 3, 3},
	}

	first, _ := Optimal(matrix)
	for i := 0; i < 10; i++ {
		again, _ := Optimal(matrix)
		if len(again.Pairs) != len(first.Pairs) {
			t.Fatalf("pair count changed")
		}
		for k := range first.Pairs {
			if first.Pairs[k] != again.Pairs[k] {
				t.Fatalf("run %d differs at %d: %+v vs %+v", i, k, again.Pairs[k], first.Pairs[k])
			}
		}
	}
}

// TestOptimalFewerWorkers 员工少于任务时直接调用只分配员工数个任务
func TestOptimalFewerWorkers(t *testing.T) {
	matrix := model.SkillMatrix{{1, 9, 2}}

	r, err := Optimal(matrix)
	if err != nil {
		t.Fatalf("Optimal: %v", err)
	}
	if len(r.Pairs) != 1 || r.Pairs[0].Task != 1 {
		t.Fatalf("pairs=%+v, want worker 0 -> task 1", r.Pairs)
	}
}
