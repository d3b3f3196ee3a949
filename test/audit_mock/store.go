// api/test/audit_mock/store.go
package mock_audit

import (
	"context"

	"github.com/firatsalmanoglu/firesafe-api/audit"
	"github.com/firatsalmanoglu/firesafe-api/authz"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

// MemoryStore is an in-memory audit.Store for controller tests. It resolves
// every candidate id to a user of the same id and counts the inserted rows.
type MemoryStore struct {
	Logs []*model.Log
}

var _ audit.Store = &MemoryStore{}

func (s *MemoryStore) UserByID(_ context.Context, id string) (*model.User, error) {
	return &model.User{ID: id}, nil
}

func (s *MemoryStore) FirstUserByRole(_ context.Context, _ authz.Role) (*model.User, error) {
	return &model.User{ID: "fallback-admin", Role: string(authz.RoleAdmin)}, nil
}

func (s *MemoryStore) FirstUser(_ context.Context) (*model.User, error) {
	return &model.User{ID: "fallback-user"}, nil
}

func (s *MemoryStore) GetOrCreateAction(_ context.Context, name string) (*model.Action, error) {
	return &model.Action{ID: "action-" + name, Name: name}, nil
}

func (s *MemoryStore) GetOrCreateTable(_ context.Context, name string) (*model.Table, error) {
	return &model.Table{ID: "table-" + name, Name: name}, nil
}

func (s *MemoryStore) CreateLog(_ context.Context, entry *model.Log) error {
	s.Logs = append(s.Logs, entry)
	return nil
}
