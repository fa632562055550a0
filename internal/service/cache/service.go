package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/constants"
	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/pkg/errors"
)

type Service struct {
	client *redis.Client
	logger *zap.Logger
}

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func NewService(cfg Config, logger *zap.Logger) (*Service, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &Service{
		client: client,
		logger: logger,
	}, nil
}

func (c *Service) Get(ctx context.Context, key string, dest any) (bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		c.logger.Error("Cache get failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("get failed", "get", key, err)
	}

	if dest != nil {
		if err := json.Unmarshal([]byte(value), dest); err != nil {
			c.logger.Error("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
			return false, errors.NewCacheError("unmarshal failed", "get", key, err)
		}
	}
	return true, nil
}

func (c *Service) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}

	if err := c.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		c.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("set failed", "set", key, err)
	}
	return nil
}

func (c *Service) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("Cache delete failed", zap.Int("count", len(keys)), zap.Error(err))
		return errors.NewCacheError("delete failed", "del", keys[0], err)
	}
	return nil
}

func (c *Service) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		c.logger.Error("Cache exists failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("exists failed", "exists", key, err)
	}
	return count > 0, nil
}

func (c *Service) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := c.client.Expire(ctx, key, ttl).Err(); err != nil {
		c.logger.Error("Cache expire failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("expire failed", "expire", key, err)
	}
	return nil
}

// Chat session helpers. Sessions live in Redis only; history older
// than the TTL simply restarts the conversation.

func sessionKey(sessionID string) string {
	return "advisor:chat:session:" + sessionID
}

func (c *Service) GetChatSession(ctx context.Context, sessionID string) (*domain.ChatSession, error) {
	var session domain.ChatSession
	found, err := c.Get(ctx, sessionKey(sessionID), &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

func (c *Service) SaveChatSession(ctx context.Context, session *domain.ChatSession) error {
	return c.Set(ctx, sessionKey(session.SessionID), session, constants.CacheTTL.ChatSession)
}

func (c *Service) DeleteChatSession(ctx context.Context, sessionID string) error {
	return c.Del(ctx, sessionKey(sessionID))
}

// Rule-engine reply cache, keyed on the normalized message so repeated
// questions skip classification entirely.

func advisorReplyKey(normalized string) string {
	return "advisor:reply:" + normalized
}

func (c *Service) GetAdvisorReply(ctx context.Context, normalized string, dest any) bool {
	found, err := c.Get(ctx, advisorReplyKey(normalized), dest)
	return err == nil && found
}

func (c *Service) SetAdvisorReply(ctx context.Context, normalized string, reply any) {
	if err := c.Set(ctx, advisorReplyKey(normalized), reply, constants.CacheTTL.AdvisorResponse); err != nil {
		c.logger.Error("Failed to cache advisor reply", zap.Error(err))
	}
}

func (c *Service) GetScrapedPrograms(ctx context.Context, key string) ([]domain.ScrapedProgram, bool) {
	var programs []domain.ScrapedProgram
	found, err := c.Get(ctx, key, &programs)
	if err != nil || !found {
		return nil, false
	}
	return programs, true
}

func (c *Service) SetScrapedPrograms(ctx context.Context, key string, programs []domain.ScrapedProgram) {
	if err := c.Set(ctx, key, programs, constants.CacheTTL.ScrapedPrograms); err != nil {
		c.logger.Error("Failed to cache scraped programs", zap.String("key", key), zap.Error(err))
	}
}

func (c *Service) IsConnected(ctx context.Context) bool {
	return c.client.Ping(ctx).Err() == nil
}

func (c *Service) Close() error {
	if err := c.client.Close(); err != nil {
		c.logger.Error("Failed to close Redis connection", zap.Error(err))
		return err
	}
	c.logger.Info("Redis disconnected")
	return nil
}
