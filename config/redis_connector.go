package config

import (
	"github.com/pkg/errors"
	"gopkg.in/redis.v5"
)

func NewRedisClient(redisUrl string) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr: redisUrl,
	})

	if err := redisClient.Ping().Err(); err != nil {
		redisClient.Close()
		return nil, errors.Wrapf(err, "connecting to redis at %s", redisUrl)
	}

	return redisClient, nil
}
