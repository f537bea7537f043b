package mock

import (
	"context"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis is an in-process redis server shared by every scenario that opts
// into the redis session backend.
type Redis struct {
	Client *redis.Client
	server *miniredis.Miniredis
}

var (
	redisOnce   sync.Once
	sharedRedis *Redis
)

// NewRedis returns the shared server, starting it on first use.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		sharedRedis = &Redis{
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
			server: server,
		}
	})
	return sharedRedis
}

// Clear drops every key so scenarios start from an empty store.
func (r *Redis) Clear(ctx context.Context) error {
	return r.Client.FlushAll(ctx).Err()
}

// FastForward moves miniredis' TTL clock; keys past their expiry vanish.
func (r *Redis) FastForward(d time.Duration) {
	r.server.FastForward(d)
}
