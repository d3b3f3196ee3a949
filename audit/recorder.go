// api/audit/recorder.go
package audit

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/firatsalmanoglu/firesafe-api/authz"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

const loopbackIP = "127.0.0.1"

// Indexer mirrors a recorded entry into a secondary search index. The mirror
// is best effort; the relational log row is the durable record.
type Indexer interface {
	Index(ctx context.Context, entry Entry) error
}

// Entry is the denormalized form of a log row handed to the search index.
type Entry struct {
	LogID  string    `json:"log_id"`
	UserID string    `json:"user_id"`
	Action string    `json:"action"`
	Table  string    `json:"table"`
	IP     string    `json:"ip"`
	Date   time.Time `json:"date"`
}

// Recorder appends audit log entries after successful mutations. Every
// failure inside RecordAction is logged and swallowed: a missing log entry
// is the accepted worst case, never a failed business operation.
type Recorder struct {
	store   Store
	indexer Indexer
}

// NewRecorder creates a Recorder. indexer may be nil when no search mirror
// is configured.
func NewRecorder(store Store, indexer Indexer) *Recorder {
	return &Recorder{store: store, indexer: indexer}
}

// RecordAction resolves the acting user, the action and table lookup rows
// and the caller's network origin, then inserts one log row. It reports
// whether the entry was written; it never returns an error to the caller.
//
// Attribution falls back in order: the supplied candidate id if it resolves
// to an existing user, else the first admin user, else the first user of any
// role, else the call is a silent no-op. User resolution runs before the
// lookup-row creation, so an aborted call leaves no side effects.
func (r *Recorder) RecordAction(ctx context.Context, candidateUserID, actionKind, tableKind string, headers http.Header) bool {
	user, err := r.resolveUser(ctx, candidateUserID)
	if err != nil {
		logger.Error("Failed to resolve audit user",
			zap.Error(err),
			zap.String("candidateUserID", candidateUserID),
			zap.String("table", tableKind))
		return false
	}
	if user == nil {
		// Zero users in the store: nothing to attribute to, by design.
		logger.Debug("No user resolvable for audit entry, skipping",
			zap.String("table", tableKind))
		return false
	}

	action, err := r.store.GetOrCreateAction(ctx, actionKind)
	if err != nil {
		logger.Error("Failed to resolve action lookup row",
			zap.Error(err), zap.String("action", actionKind))
		return false
	}

	table, err := r.store.GetOrCreateTable(ctx, tableKind)
	if err != nil {
		logger.Error("Failed to resolve table lookup row",
			zap.Error(err), zap.String("table", tableKind))
		return false
	}

	entry := &model.Log{
		UserID:   user.ID,
		ActionID: action.ID,
		TableID:  table.ID,
		IP:       ClientIP(headers),
	}
	if err := r.store.CreateLog(ctx, entry); err != nil {
		logger.Error("Failed to insert audit log entry",
			zap.Error(err),
			zap.String("userID", user.ID),
			zap.String("action", actionKind),
			zap.String("table", tableKind))
		return false
	}

	if r.indexer != nil {
		doc := Entry{
			LogID:  entry.ID,
			UserID: user.ID,
			Action: actionKind,
			Table:  tableKind,
			IP:     entry.IP,
			Date:   entry.Date,
		}
		if err := r.indexer.Index(ctx, doc); err != nil {
			logger.Warn("Failed to mirror audit entry to search index",
				zap.Error(err), zap.String("logID", entry.ID))
		}
	}

	return true
}

// resolveUser walks the attribution fallback chain. A nil user with nil
// error means the chain is exhausted and the entry should be skipped.
func (r *Recorder) resolveUser(ctx context.Context, candidateUserID string) (*model.User, error) {
	if candidateUserID != "" {
		user, err := r.store.UserByID(ctx, candidateUserID)
		if err == nil {
			return user, nil
		}
		if err != ErrNoUser {
			return nil, err
		}
	}

	user, err := r.store.FirstUserByRole(ctx, authz.RoleAdmin)
	if err == nil {
		return user, nil
	}
	if err != ErrNoUser {
		return nil, err
	}

	user, err = r.store.FirstUser(ctx)
	if err == nil {
		return user, nil
	}
	if err != ErrNoUser {
		return nil, err
	}
	return nil, nil
}

// ClientIP extracts a best-effort caller address: the first forwarded-for
// hop, else the real-ip header, else loopback.
func ClientIP(headers http.Header) string {
	if headers != nil {
		if fwd := headers.Get("X-Forwarded-For"); fwd != "" {
			if i := strings.Index(fwd, ","); i >= 0 {
				fwd = fwd[:i]
			}
			if ip := strings.TrimSpace(fwd); ip != "" {
				return ip
			}
		}
		if ip := strings.TrimSpace(headers.Get("X-Real-Ip")); ip != "" {
			return ip
		}
	}
	return loopbackIP
}
