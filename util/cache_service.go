// api/util/cache_service.go

package util

import (
	"context"

	"github.com/firatsalmanoglu/firesafe-api/db"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetDevice(ctx context.Context, deviceID string) (*model.Device, error) {
	return db.GetCachedDevice(ctx, deviceID)
}

func (c *CacheService) SetDevice(ctx context.Context, device model.Device) error {
	return db.CacheDevice(ctx, &device)
}

func (c *CacheService) DeleteDevice(ctx context.Context, deviceID string) error {
	return db.DeleteCachedDevice(ctx, deviceID)
}

func (c *CacheService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return db.GetCachedUser(ctx, userID)
}

func (c *CacheService) SetUser(ctx context.Context, user model.User) error {
	return db.CacheUser(ctx, &user)
}

func (c *CacheService) DeleteUser(ctx context.Context, userID string) error {
	return db.DeleteCachedUser(ctx, userID)
}

func (c *CacheService) GetInstitution(ctx context.Context, institutionID string) (*model.Institution, error) {
	return db.GetCachedInstitution(ctx, institutionID)
}

func (c *CacheService) SetInstitution(ctx context.Context, institution model.Institution) error {
	return db.CacheInstitution(ctx, &institution)
}

func (c *CacheService) DeleteInstitution(ctx context.Context, institutionID string) error {
	return db.DeleteCachedInstitution(ctx, institutionID)
}
