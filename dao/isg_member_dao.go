// api/dao/isg_member_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

type IsgMemberDAO struct {
	DB *gorm.DB
}

func NewIsgMemberDAO(db *gorm.DB) *IsgMemberDAO {
	return &IsgMemberDAO{DB: db}
}

func (dao *IsgMemberDAO) CreateMember(ctx context.Context, member model.IsgMember) (string, error) {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if err := dao.DB.WithContext(ctx).Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", fs_errors.ErrIsgMemberConflict
		}
		logger.Error("Failed to create ISG member", zap.Error(err))
		return "", fs_errors.ErrDatabaseOperation
	}
	logger.Info("ISG member created successfully", zap.String("memberID", member.ID))
	return member.ID, nil
}

func (dao *IsgMemberDAO) UpdateMember(ctx context.Context, member model.IsgMember) (*model.IsgMember, error) {
	res := dao.DB.WithContext(ctx).Model(&model.IsgMember{}).
		Where("id = ?", member.ID).
		Updates(&member)
	if res.Error != nil {
		logger.Error("Failed to update ISG member", zap.Error(res.Error), zap.String("memberID", member.ID))
		return nil, fmt.Errorf("failed to update isg member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fs_errors.ErrIsgMemberNotFound
	}
	return dao.GetMember(ctx, member.ID)
}

func (dao *IsgMemberDAO) DeleteMember(ctx context.Context, memberID string) error {
	res := dao.DB.WithContext(ctx).Delete(&model.IsgMember{}, "id = ?", memberID)
	if res.Error != nil {
		logger.Error("Failed to delete ISG member", zap.Error(res.Error), zap.String("memberID", memberID))
		return fmt.Errorf("failed to delete isg member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fs_errors.ErrIsgMemberNotFound
	}
	return nil
}

func (dao *IsgMemberDAO) GetMember(ctx context.Context, memberID string) (*model.IsgMember, error) {
	var member model.IsgMember
	err := dao.DB.WithContext(ctx).First(&member, "id = ?", memberID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fs_errors.ErrIsgMemberNotFound
	}
	if err != nil {
		return nil, fs_errors.ErrDatabaseOperation
	}
	return &member, nil
}

func (dao *IsgMemberDAO) ListMembers(ctx context.Context, limit int, offset int) ([]*model.IsgMember, error) {
	var members []*model.IsgMember
	err := dao.DB.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&members).Error
	if err != nil {
		logger.Error("Failed to list ISG members", zap.Error(err))
		return nil, fmt.Errorf("failed to list isg members: %w", err)
	}
	return members, nil
}
