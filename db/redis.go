// api/db/redis.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/firatsalmanoglu/firesafe-api/logging"
	"github.com/firatsalmanoglu/firesafe-api/model"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func CacheDevice(ctx context.Context, device *model.Device) error {
	deviceJSON, err := json.Marshal(device)
	if err != nil {
		return fmt.Errorf("failed to marshal device: %w", err)
	}

	key := fmt.Sprintf("device:%s", device.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, deviceJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache device: %w", err)
	}

	logger.Debug("Device cached successfully", zap.String("deviceID", device.ID))
	return nil
}

func GetCachedDevice(ctx context.Context, deviceID string) (*model.Device, error) {
	key := fmt.Sprintf("device:%s", deviceID)
	deviceJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Device not found in cache", zap.String("deviceID", deviceID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get device from cache: %w", err)
	}

	var device model.Device
	err = json.Unmarshal([]byte(deviceJSON), &device)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal device: %w", err)
	}

	logger.Debug("Device retrieved from cache", zap.String("deviceID", deviceID))
	return &device, nil
}

func DeleteCachedDevice(ctx context.Context, deviceID string) error {
	key := fmt.Sprintf("device:%s", deviceID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete device from cache: %w", err)
	}
	logger.Debug("Device deleted from cache", zap.String("deviceID", deviceID))
	return nil
}

func CacheUser(ctx context.Context, user *model.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	key := fmt.Sprintf("user:%s", user.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, userJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache user: %w", err)
	}

	logger.Debug("User cached successfully", zap.String("userID", user.ID))
	return nil
}

func GetCachedUser(ctx context.Context, userID string) (*model.User, error) {
	key := fmt.Sprintf("user:%s", userID)
	userJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("User not found in cache", zap.String("userID", userID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user from cache: %w", err)
	}

	var user model.User
	err = json.Unmarshal([]byte(userJSON), &user)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	logger.Debug("User retrieved from cache", zap.String("userID", userID))
	return &user, nil
}

func DeleteCachedUser(ctx context.Context, userID string) error {
	key := fmt.Sprintf("user:%s", userID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete user from cache: %w", err)
	}
	logger.Debug("User deleted from cache", zap.String("userID", userID))
	return nil
}

func CacheInstitution(ctx context.Context, institution *model.Institution) error {
	institutionJSON, err := json.Marshal(institution)
	if err != nil {
		return fmt.Errorf("failed to marshal institution: %w", err)
	}

	key := fmt.Sprintf("institution:%s", institution.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, institutionJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache institution: %w", err)
	}

	logger.Debug("Institution cached successfully", zap.String("institutionID", institution.ID))
	return nil
}

func GetCachedInstitution(ctx context.Context, institutionID string) (*model.Institution, error) {
	key := fmt.Sprintf("institution:%s", institutionID)
	institutionJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Institution not found in cache", zap.String("institutionID", institutionID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get institution from cache: %w", err)
	}

	var institution model.Institution
	err = json.Unmarshal([]byte(institutionJSON), &institution)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal institution: %w", err)
	}

	logger.Debug("Institution retrieved from cache", zap.String("institutionID", institutionID))
	return &institution, nil
}

func DeleteCachedInstitution(ctx context.Context, institutionID string) error {
	key := fmt.Sprintf("institution:%s", institutionID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete institution from cache: %w", err)
	}
	logger.Debug("Institution deleted from cache", zap.String("institutionID", institutionID))
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

func LockResource(ctx context.Context, resourceName string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:%s", resourceName)
	locked, err := RedisClient.SetNX(ctx, key, "locked", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	logger.Debug("Lock acquisition attempt",
		zap.String("resource", resourceName),
		zap.Bool("locked", locked))
	return locked, nil
}

func UnlockResource(ctx context.Context, resourceName string) error {
	key := fmt.Sprintf("lock:%s", resourceName)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	logger.Debug("Lock released", zap.String("resource", resourceName))
	return nil
}
