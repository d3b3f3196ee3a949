// api/audit/store.go
package audit

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/firatsalmanoglu/firesafe-api/authz"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

// ErrNoUser is returned by the user-resolution helpers when no row matches.
var ErrNoUser = errors.New("no user row found")

// Store is what the recorder needs from the relational store: user lookups
// for the attribution chain, lazy lookup-row creation and the log insert.
type Store interface {
	UserByID(ctx context.Context, id string) (*model.User, error)
	FirstUserByRole(ctx context.Context, role authz.Role) (*model.User, error)
	FirstUser(ctx context.Context) (*model.User, error)
	GetOrCreateAction(ctx context.Context, name string) (*model.Action, error)
	GetOrCreateTable(ctx context.Context, name string) (*model.Table, error)
	CreateLog(ctx context.Context, entry *model.Log) error
}

// GormStore backs the recorder with the primary relational database. Each
// method is a single statement; the get-or-create pairs are intentionally
// not wrapped in one transaction, so the unique index on the name column is
// the only duplicate guard under concurrency.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) UserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoUser
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) FirstUserByRole(ctx context.Context, role authz.Role) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("role = ?", string(role)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoUser
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) FirstUser(ctx context.Context) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoUser
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetOrCreateAction(ctx context.Context, name string) (*model.Action, error) {
	var action model.Action
	err := s.db.WithContext(ctx).
		Where(model.Action{Name: name}).
		Attrs(model.Action{ID: uuid.New().String()}).
		FirstOrCreate(&action).Error
	if err != nil {
		return nil, err
	}
	return &action, nil
}

func (s *GormStore) GetOrCreateTable(ctx context.Context, name string) (*model.Table, error) {
	var table model.Table
	err := s.db.WithContext(ctx).
		Where(model.Table{Name: name}).
		Attrs(model.Table{ID: uuid.New().String()}).
		FirstOrCreate(&table).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *GormStore) CreateLog(ctx context.Context, entry *model.Log) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return s.db.WithContext(ctx).Create(entry).Error
}
