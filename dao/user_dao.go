// api/dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (string, error) {
	start := time.Now()
	logger.Info("Creating new user", zap.String("email", user.Email))

	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	err := dao.DB.WithContext(ctx).Create(&user).Error
	if err != nil {
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.Duration("duration", time.Since(start)))
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", fs_errors.ErrUserConflict
		}
		return "", fs_errors.ErrDatabaseOperation
	}

	logger.Info("User created successfully",
		zap.String("userID", user.ID),
		zap.Duration("duration", time.Since(start)))
	return user.ID, nil
}

func (dao *UserDAO) UpdateUser(ctx context.Context, user model.User) (*model.User, error) {
	res := dao.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(&user)
	if res.Error != nil {
		logger.Error("Failed to update user", zap.Error(res.Error), zap.String("userID", user.ID))
		return nil, fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fs_errors.ErrUserNotFound
	}
	return dao.GetUser(ctx, user.ID)
}

func (dao *UserDAO) DeleteUser(ctx context.Context, userID string) error {
	res := dao.DB.WithContext(ctx).Delete(&model.User{}, "id = ?", userID)
	if res.Error != nil {
		logger.Error("Failed to delete user", zap.Error(res.Error), zap.String("userID", userID))
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fs_errors.ErrUserNotFound
	}
	logger.Info("User deleted successfully", zap.String("userID", userID))
	return nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := dao.DB.WithContext(ctx).First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fs_errors.ErrUserNotFound
	}
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err), zap.String("userID", userID))
		return nil, fs_errors.ErrDatabaseOperation
	}
	return &user, nil
}

func (dao *UserDAO) ListUsers(ctx context.Context, limit int, offset int) ([]*model.User, error) {
	var users []*model.User
	err := dao.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (dao *UserDAO) SearchUsers(ctx context.Context, criteria model.UserSearchCriteria) ([]*model.User, error) {
	query := dao.DB.WithContext(ctx).Model(&model.User{})

	if criteria.Name != "" {
		query = query.Where("name ILIKE ?", "%"+criteria.Name+"%")
	}
	if criteria.Email != "" {
		query = query.Where("email = ?", criteria.Email)
	}
	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}
	if criteria.InstitutionID != "" {
		query = query.Where("institution_id = ?", criteria.InstitutionID)
	}
	query = query.Order("created_at DESC")
	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit)
	}
	if criteria.Offset > 0 {
		query = query.Offset(criteria.Offset)
	}

	var users []*model.User
	if err := query.Find(&users).Error; err != nil {
		logger.Error("Failed to search users", zap.Error(err))
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}
