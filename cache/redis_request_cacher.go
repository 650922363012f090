package cache

import (
	"github.com/pkg/errors"
	"gopkg.in/redis.v5"
)

type RedisRequestCacher struct {
	MaxNumber   int
	RedisClient *redis.Client
}

func CreateRedisCache(maxNumber int, redisClient *redis.Client) *RedisRequestCacher {
	return &RedisRequestCacher{maxNumber, redisClient}
}

func (cacher *RedisRequestCacher) Write(key string, value []byte) error {
	pushCmd := cacher.RedisClient.LPush(key, value)

	if pushCmd.Err() != nil {
		return errors.Wrapf(pushCmd.Err(), "pushing activity for %s", key)
	}

	trimCmd := cacher.RedisClient.LTrim(key, 0, int64(cacher.MaxNumber-1))

	if trimCmd.Err() != nil {
		return errors.Wrapf(trimCmd.Err(), "trimming activity for %s", key)
	}

	return nil
}

func (cacher *RedisRequestCacher) Read(key string) ([]string, error) {
	values, err := cacher.RedisClient.LRange(key, 0, int64(cacher.MaxNumber-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "reading activity for %s", key)
	}
	return values, nil
}
