// Package redis connects to the redis server that backs resource.RedisStore.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//	store := resource.NewRedisStore(client)
//
// Healthcheck adapts the client to a readiness probe.
package redis
