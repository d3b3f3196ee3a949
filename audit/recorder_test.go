// api/audit/recorder_test.go
package audit

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/firatsalmanoglu/firesafe-api/authz"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

func TestMain(m *testing.M) {
	logger.InitLogger("../logging")
	m.Run()
}

// fakeStore is an in-memory Store that records which lookups and writes the
// recorder performed.
type fakeStore struct {
	users     map[string]*model.User
	adminUser *model.User
	anyUser   *model.User
	failWith  error

	actionCalls []string
	tableCalls  []string
	logs        []*model.Log
}

func (s *fakeStore) UserByID(_ context.Context, id string) (*model.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, ErrNoUser
}

func (s *fakeStore) FirstUserByRole(_ context.Context, role authz.Role) (*model.User, error) {
	if role == authz.RoleAdmin && s.adminUser != nil {
		return s.adminUser, nil
	}
	return nil, ErrNoUser
}

func (s *fakeStore) FirstUser(_ context.Context) (*model.User, error) {
	if s.anyUser != nil {
		return s.anyUser, nil
	}
	return nil, ErrNoUser
}

func (s *fakeStore) GetOrCreateAction(_ context.Context, name string) (*model.Action, error) {
	s.actionCalls = append(s.actionCalls, name)
	return &model.Action{ID: "action-" + name, Name: name}, nil
}

func (s *fakeStore) GetOrCreateTable(_ context.Context, name string) (*model.Table, error) {
	s.tableCalls = append(s.tableCalls, name)
	return &model.Table{ID: "table-" + name, Name: name}, nil
}

func (s *fakeStore) CreateLog(_ context.Context, entry *model.Log) error {
	s.logs = append(s.logs, entry)
	return nil
}

// failingLogStore fails the final insert to exercise the swallow path.
type failingLogStore struct {
	fakeStore
}

func (s *failingLogStore) CreateLog(_ context.Context, _ *model.Log) error {
	return errors.New("insert failed")
}

type fakeIndexer struct {
	entries []Entry
	err     error
}

func (i *fakeIndexer) Index(_ context.Context, entry Entry) error {
	if i.err != nil {
		return i.err
	}
	i.entries = append(i.entries, entry)
	return nil
}

func TestRecordActionCandidateAttribution(t *testing.T) {
	store := &fakeStore{
		users: map[string]*model.User{"u-1": {ID: "u-1", Role: string(authz.RoleCustomerL1)}},
	}
	recorder := NewRecorder(store, nil)

	ok := recorder.RecordAction(context.Background(), "u-1", model.ActionCreate, "Devices", nil)

	assert.True(t, ok)
	if assert.Len(t, store.logs, 1) {
		assert.Equal(t, "u-1", store.logs[0].UserID)
		assert.Equal(t, "action-"+model.ActionCreate, store.logs[0].ActionID)
		assert.Equal(t, "table-Devices", store.logs[0].TableID)
		assert.Equal(t, "127.0.0.1", store.logs[0].IP)
	}
	assert.Equal(t, []string{model.ActionCreate}, store.actionCalls)
	assert.Equal(t, []string{"Devices"}, store.tableCalls)
}

func TestRecordActionFallbackChain(t *testing.T) {
	t.Run("unknown candidate falls back to first admin", func(t *testing.T) {
		store := &fakeStore{
			adminUser: &model.User{ID: "adm-1", Role: string(authz.RoleAdmin)},
			anyUser:   &model.User{ID: "other-1"},
		}
		recorder := NewRecorder(store, nil)

		ok := recorder.RecordAction(context.Background(), "gone-user", model.ActionDelete, "Devices", nil)

		assert.True(t, ok)
		if assert.Len(t, store.logs, 1) {
			assert.Equal(t, "adm-1", store.logs[0].UserID)
		}
	})

	t.Run("empty candidate skips the lookup", func(t *testing.T) {
		store := &fakeStore{
			adminUser: &model.User{ID: "adm-1", Role: string(authz.RoleAdmin)},
			// UserByID would fail hard if it were called with an empty id.
			failWith: errors.New("must not be called"),
		}
		recorder := NewRecorder(store, nil)

		ok := recorder.RecordAction(context.Background(), "", model.ActionUpdate, "Users", nil)

		assert.True(t, ok)
		if assert.Len(t, store.logs, 1) {
			assert.Equal(t, "adm-1", store.logs[0].UserID)
		}
	})

	t.Run("no admin falls back to first user of any role", func(t *testing.T) {
		store := &fakeStore{
			anyUser: &model.User{ID: "u-5", Role: string(authz.RoleCustomerL2)},
		}
		recorder := NewRecorder(store, nil)

		ok := recorder.RecordAction(context.Background(), "gone-user", model.ActionCreate, "Notifications", nil)

		assert.True(t, ok)
		if assert.Len(t, store.logs, 1) {
			assert.Equal(t, "u-5", store.logs[0].UserID)
		}
	})
}

func TestRecordActionEmptyStoreLeavesNoSideEffects(t *testing.T) {
	store := &fakeStore{}
	recorder := NewRecorder(store, nil)

	ok := recorder.RecordAction(context.Background(), "nobody", model.ActionCreate, "Devices", nil)

	assert.False(t, ok)
	// The aborted call must not have created any lookup rows or log rows.
	assert.Empty(t, store.actionCalls)
	assert.Empty(t, store.tableCalls)
	assert.Empty(t, store.logs)
}

func TestRecordActionHardStoreError(t *testing.T) {
	store := &fakeStore{failWith: errors.New("connection reset")}
	recorder := NewRecorder(store, nil)

	ok := recorder.RecordAction(context.Background(), "u-1", model.ActionCreate, "Devices", nil)

	assert.False(t, ok)
	assert.Empty(t, store.actionCalls)
	assert.Empty(t, store.logs)
}

func TestRecordActionInsertFailureIsSwallowed(t *testing.T) {
	store := &failingLogStore{fakeStore: fakeStore{
		users: map[string]*model.User{"u-1": {ID: "u-1"}},
	}}
	recorder := NewRecorder(store, nil)

	ok := recorder.RecordAction(context.Background(), "u-1", model.ActionCreate, "Devices", nil)

	assert.False(t, ok)
}

func TestRecordActionMirrorsToIndexer(t *testing.T) {
	store := &fakeStore{
		users: map[string]*model.User{"u-1": {ID: "u-1"}},
	}
	indexer := &fakeIndexer{}
	recorder := NewRecorder(store, indexer)

	headers := http.Header{}
	headers.Set("X-Forwarded-For", "10.1.2.3")

	ok := recorder.RecordAction(context.Background(), "u-1", model.ActionUpdate, "OfferCards", headers)

	assert.True(t, ok)
	if assert.Len(t, indexer.entries, 1) {
		assert.Equal(t, "u-1", indexer.entries[0].UserID)
		assert.Equal(t, model.ActionUpdate, indexer.entries[0].Action)
		assert.Equal(t, "OfferCards", indexer.entries[0].Table)
		assert.Equal(t, "10.1.2.3", indexer.entries[0].IP)
	}
}

func TestRecordActionIndexerFailureStillSucceeds(t *testing.T) {
	store := &fakeStore{
		users: map[string]*model.User{"u-1": {ID: "u-1"}},
	}
	recorder := NewRecorder(store, &fakeIndexer{err: errors.New("index down")})

	ok := recorder.RecordAction(context.Background(), "u-1", model.ActionCreate, "Devices", nil)

	assert.True(t, ok)
	assert.Len(t, store.logs, 1)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers http.Header
		want    string
	}{
		{"nil headers", nil, "127.0.0.1"},
		{"no headers set", http.Header{}, "127.0.0.1"},
		{
			"forwarded single hop",
			http.Header{"X-Forwarded-For": []string{"203.0.113.7"}},
			"203.0.113.7",
		},
		{
			"forwarded chain keeps first hop",
			http.Header{"X-Forwarded-For": []string{"203.0.113.7, 10.0.0.1, 10.0.0.2"}},
			"203.0.113.7",
		},
		{
			"real ip fallback",
			http.Header{"X-Real-Ip": []string{"198.51.100.9"}},
			"198.51.100.9",
		},
		{
			"forwarded wins over real ip",
			http.Header{
				"X-Forwarded-For": []string{"203.0.113.7"},
				"X-Real-Ip":       []string{"198.51.100.9"},
			},
			"203.0.113.7",
		},
		{
			"blank forwarded falls through to real ip",
			http.Header{
				"X-Forwarded-For": []string{"  "},
				"X-Real-Ip":       []string{"198.51.100.9"},
			},
			"198.51.100.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientIP(tt.headers))
		})
	}
}
