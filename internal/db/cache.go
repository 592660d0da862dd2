package helpnet

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
}

func NewCacheService() (serv *CacheService, err error) {

	// config
	addr := os.Getenv("HELPNET_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env HELPNET_CACHE_URL is not set")
	}
	user := os.Getenv("HELPNET_CACHE_USER")
	pwd := os.Getenv("HELPNET_CACHE_PWD")

	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db}, nil
}

func confirmedKey(receiverID string) string {
	return "confirmed:" + receiverID
}

func (c *CacheService) GetConfirmedCount(ctx context.Context, receiverID string) (count int, err error) {
	val, err := c.client.Get(ctx, confirmedKey(receiverID)).Result()
	if err == redis.Nil {
		return 0, fmt.Errorf("not found")
	} else if err != nil {
		return 0, err
	}

	count, err = strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (c *CacheService) SetConfirmedCount(ctx context.Context, receiverID string, count int) (err error) {
	err = c.client.Set(ctx, confirmedKey(receiverID), count, 5*time.Minute).Err()
	if err != nil {
		return err
	}
	return nil
}

func (c *CacheService) InvalidateConfirmedCount(ctx context.Context, receiverID string) error {
	err := c.client.Del(ctx, confirmedKey(receiverID)).Err()
	if err != nil {
		return err
	}
	return nil
}
