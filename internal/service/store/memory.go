package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/Dhanush8/workers-assignment/internal/model"
	"github.com/Dhanush8/workers-assignment/internal/service/assigner"
)

// ErrRosterNotFound 名册不存在
var ErrRosterNotFound = errors.New("roster not found")

// MemoryStore 内存名册存储（进程内，不落盘）
type MemoryStore struct {
	rosters map[string]*model.Roster
	policy  assigner.Policy
	mu      sync.RWMutex
}

// NewMemoryStore 创建内存存储
func NewMemoryStore(policy assigner.Policy) *MemoryStore {
	return &MemoryStore{
		rosters: make(map[string]*model.Roster),
		policy:  policy,
	}
}

// AddRoster 添加名册
func (s *MemoryStore) AddRoster(r *model.Roster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rosters[r.ID] = r
}

// GetRoster 获取单个名册
func (s *MemoryStore) GetRoster(id string) (*model.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rosters[id]
	if !ok {
		return nil, ErrRosterNotFound
	}
	return r, nil
}

// ListRosters 获取所有名册，按导入时间倒序
func (s *MemoryStore) ListRosters() []*model.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*model.Roster, 0, len(s.rosters))
	for _, r := range s.rosters {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].ImportedAt.Equal(result[j].ImportedAt) {
			return result[i].ImportedAt.After(result[j].ImportedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// DeleteRoster 删除名册
func (s *MemoryStore) DeleteRoster(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rosters[id]; !ok {
		return ErrRosterNotFound
	}
	delete(s.rosters, id)
	return nil
}

// GetPolicy 获取兼岗策略
func (s *MemoryStore) GetPolicy() assigner.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// SetPolicy 设置兼岗策略
func (s *MemoryStore) SetPolicy(policy assigner.Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy = policy
}

// Count 获取名册数量
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rosters)
}

// Clear 清空所有名册
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rosters = make(map[string]*model.Roster)
}
