// Package redis connects a go-redis client with bounded retries and exposes a
// readiness check for it.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Connect gives up when RetryAttempts pings have failed or ConnectTimeout
// elapses, whichever comes first.
package redis
