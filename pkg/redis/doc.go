// Package redis connects to Redis for state shared between server
// processes, currently the contact form rate limiter.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := ratelimiter.NewRedisStore(client)
//
// Healthcheck adapts a client to the readiness probe of pkg/httpserver.
// Sentinel errors wrap go-redis failures with errors.Join.
package redis
