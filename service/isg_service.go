// api/service/isg_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/firatsalmanoglu/firesafe-api/dao"
	fs_errors "github.com/firatsalmanoglu/firesafe-api/errors"
	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
	"github.com/firatsalmanoglu/firesafe-api/util"
)

// IIsgService defines the interface for safety-officer roster operations
type IIsgService interface {
	CreateMember(ctx context.Context, member model.IsgMember) (*model.IsgMember, error)
	UpdateMember(ctx context.Context, member model.IsgMember) (*model.IsgMember, error)
	DeleteMember(ctx context.Context, memberID string) error
	GetMember(ctx context.Context, memberID string) (*model.IsgMember, error)
	ListMembers(ctx context.Context, limit int, offset int) ([]*model.IsgMember, error)
}

type IsgService struct {
	memberDAO      *dao.IsgMemberDAO
	validationUtil *util.ValidationUtil
}

var _ IIsgService = &IsgService{}

func NewIsgService(memberDAO *dao.IsgMemberDAO, validationUtil *util.ValidationUtil) *IsgService {
	return &IsgService{
		memberDAO:      memberDAO,
		validationUtil: validationUtil,
	}
}

func (s *IsgService) CreateMember(ctx context.Context, member model.IsgMember) (*model.IsgMember, error) {
	if err := s.validationUtil.ValidateIsgMember(member); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidIsgMemberData, err)
	}

	memberID, err := s.memberDAO.CreateMember(ctx, member)
	if err != nil {
		logger.Error("Error creating ISG member", zap.Error(err))
		return nil, err
	}

	member.ID = memberID
	return &member, nil
}

func (s *IsgService) UpdateMember(ctx context.Context, member model.IsgMember) (*model.IsgMember, error) {
	if err := s.validationUtil.ValidateIsgMember(member); err != nil {
		return nil, fmt.Errorf("%w: %v", fs_errors.ErrInvalidIsgMemberData, err)
	}

	updatedMember, err := s.memberDAO.UpdateMember(ctx, member)
	if err != nil {
		logger.Error("Error updating ISG member", zap.Error(err), zap.String("memberID", member.ID))
		return nil, err
	}
	return updatedMember, nil
}

func (s *IsgService) DeleteMember(ctx context.Context, memberID string) error {
	if err := s.memberDAO.DeleteMember(ctx, memberID); err != nil {
		logger.Error("Error deleting ISG member", zap.Error(err), zap.String("memberID", memberID))
		return err
	}
	return nil
}

func (s *IsgService) GetMember(ctx context.Context, memberID string) (*model.IsgMember, error) {
	return s.memberDAO.GetMember(ctx, memberID)
}

func (s *IsgService) ListMembers(ctx context.Context, limit int, offset int) ([]*model.IsgMember, error) {
	members, err := s.memberDAO.ListMembers(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing ISG members", zap.Error(err))
		return nil, fmt.Errorf("failed to list isg members: %w", err)
	}
	return members, nil
}
