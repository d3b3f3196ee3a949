// api/dao/log_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	logger "github.com/firatsalmanoglu/firesafe-api/logging"
)

// LogView is the flattened shape returned to callers, with the
// action and table lookup rows joined in.
type LogView struct {
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Action string    `json:"action"`
	Table  string    `json:"table"`
	IP     string    `json:"ip"`
	Date   time.Time `json:"date"`
}

type LogDAO struct {
	DB *gorm.DB
}

func NewLogDAO(db *gorm.DB) *LogDAO {
	return &LogDAO{DB: db}
}

func (dao *LogDAO) ListLogs(ctx context.Context, limit int, offset int) ([]*LogView, error) {
	start := time.Now()

	var logs []*LogView
	err := dao.DB.WithContext(ctx).
		Table("logs").
		Select("logs.id, logs.user_id, actions.name AS action, tables.name AS \"table\", logs.ip, logs.date").
		Joins("JOIN actions ON actions.id = logs.action_id").
		Joins("JOIN tables ON tables.id = logs.table_id").
		Order("logs.date DESC").
		Limit(limit).
		Offset(offset).
		Scan(&logs).Error
	if err != nil {
		logger.Error("Failed to list logs", zap.Error(err))
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	logger.Info("Listed audit logs",
		zap.Int("count", len(logs)),
		zap.Duration("duration", time.Since(start)))
	return logs, nil
}

func (dao *LogDAO) ListLogsByUser(ctx context.Context, userID string, limit int, offset int) ([]*LogView, error) {
	var logs []*LogView
	err := dao.DB.WithContext(ctx).
		Table("logs").
		Select("logs.id, logs.user_id, actions.name AS action, tables.name AS \"table\", logs.ip, logs.date").
		Joins("JOIN actions ON actions.id = logs.action_id").
		Joins("JOIN tables ON tables.id = logs.table_id").
		Where("logs.user_id = ?", userID).
		Order("logs.date DESC").
		Limit(limit).
		Offset(offset).
		Scan(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list logs for user: %w", err)
	}
	return logs, nil
}
