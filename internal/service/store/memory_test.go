package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Dhanush8/workers-assignment/internal/model"
	"github.com/Dhanush8/workers-assignment/internal/service/assigner"
)

func newRoster(id string, at time.Time) *model.Roster {
	return &model.Roster{
		ID:         id,
		WorkerIDs:  []string{"E01"},
		TaskNames:  []string{"T1"},
		Matrix:     model.SkillMatrix{{1}},
		ImportedAt: at,
	}
}

// TestNewMemoryStore 测试创建存储
func TestNewMemoryStore(t *testing.T) {
	store := NewMemoryStore(assigner.DefaultPolicy())
	if store == nil {
		t.Fatal("NewMemoryStore() returned nil")
	}
	if store.Count() != 0 {
		t.Errorf("New store should be empty, got %d rosters", store.Count())
	}
	if store.GetPolicy().DoubleBookOffset != assigner.DefaultDoubleBookOffset {
		t.Errorf("policy=%+v", store.GetPolicy())
	}
}

// TestAddAndGetRoster 测试添加与获取名册
func TestAddAndGetRoster(t *testing.T) {
	store := NewMemoryStore(assigner.DefaultPolicy())
	store.AddRoster(newRoster("r1", time.Now()))

	got, err := store.GetRoster("r1")
	if err != nil {
		t.Fatalf("GetRoster failed: %v", err)
	}
	if got.ID != "r1" {
		t.Errorf("ID=%s", got.ID)
	}

	if _, err := store.GetRoster("missing"); !errors.Is(err, ErrRosterNotFound) {
		t.Errorf("err=%v, want ErrRosterNotFound", err)
	}
}

// TestListRostersOrder 测试按导入时间倒序
func TestListRostersOrder(t *testing.T) {
	store := NewMemoryStore(assigner.DefaultPolicy())
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.AddRoster(newRoster("old", base))
	store.AddRoster(newRoster("new", base.Add(time.Hour)))

	list := store.ListRosters()
	if len(list) != 2 || list[0].ID != "new" {
		t.Fatalf("order=%v,%v", list[0].ID, list[1].ID)
	}
}

// TestDeleteAndClear 测试删除与清空
func TestDeleteAndClear(t *testing.T) {
	store := NewMemoryStore(assigner.DefaultPolicy())
	store.AddRoster(newRoster("r1", time.Now()))
	store.AddRoster(newRoster("r2", time.Now()))

	if err := store.DeleteRoster("r1"); err != nil {
		t.Fatalf("DeleteRoster: %v", err)
	}
	if err := store.DeleteRoster("r1"); !errors.Is(err, ErrRosterNotFound) {
		t.Fatalf("second delete err=%v", err)
	}
	store.Clear()
	if store.Count() != 0 {
		t.Fatalf("Count=%d after Clear", store.Count())
	}
}

// TestSetPolicy 测试策略更新
func TestSetPolicy(t *testing.T) {
	store := NewMemoryStore(assigner.DefaultPolicy())
	store.SetPolicy(assigner.Policy{DoubleBookOffset: 4})
	if store.GetPolicy().DoubleBookOffset != 4 {
		t.Fatalf("policy=%+v", store.GetPolicy())
	}
}

// TestConcurrentAccess 测试并发读写
func TestConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(assigner.DefaultPolicy())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			store.AddRoster(newRoster(fmt.Sprintf("r%d", i), time.Now()))
		}(i)
		go func() {
			defer wg.Done()
			_ = store.ListRosters()
			_ = store.GetPolicy()
		}()
	}
	wg.Wait()

	if store.Count() != 50 {
		t.Fatalf("Count=%d, want 50", store.Count())
	}
}
