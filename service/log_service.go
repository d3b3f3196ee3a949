// api/service/log_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/firatsalmanoglu/firesafe-api/audit"
	"github.com/firatsalmanoglu/firesafe-api/dao"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
)

// ILogService defines the interface for reading the audit trail
type ILogService interface {
	ListLogs(ctx context.Context, limit int, offset int) ([]*dao.LogView, error)
	ListLogsByUser(ctx context.Context, userID string, limit int, offset int) ([]*dao.LogView, error)
	SearchLogs(ctx context.Context, from, to time.Time, userID, table string) ([]audit.Entry, error)
}

// LogService reads audit entries. The relational store is authoritative;
// Elasticsearch, when configured, serves time-range searches.
type LogService struct {
	logDAO *dao.LogDAO
	search *audit.ElasticsearchRepository
}

var _ ILogService = &LogService{}

func NewLogService(logDAO *dao.LogDAO, search *audit.ElasticsearchRepository) *LogService {
	return &LogService{
		logDAO: logDAO,
		search: search,
	}
}

func (s *LogService) ListLogs(ctx context.Context, limit int, offset int) ([]*dao.LogView, error) {
	return s.logDAO.ListLogs(ctx, limit, offset)
}

func (s *LogService) ListLogsByUser(ctx context.Context, userID string, limit int, offset int) ([]*dao.LogView, error) {
	return s.logDAO.ListLogsByUser(ctx, userID, limit, offset)
}

func (s *LogService) SearchLogs(ctx context.Context, from, to time.Time, userID, table string) ([]audit.Entry, error) {
	if s.search == nil {
		return nil, errors.New("log search is not configured")
	}

	entries, err := s.search.Query(ctx, from, to, userID, table)
	if err != nil {
		logger.Error("Error searching audit logs", zap.Error(err))
		return nil, fmt.Errorf("failed to search logs: %w", err)
	}
	return entries, nil
}
