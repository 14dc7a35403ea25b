// Package redis opens the optional Redis connection used for session storage.
//
//	client, err := redis.Open(ctx, cfg.Redis)
//	if err != nil {
//		return err
//	}
//	store := session.NewRedisStore(client)
//
// Healthcheck plugs into the readiness check and Shutdown into the server's
// shutdown hooks.
package redis
