// Package redis provides Redis connection management for the token
// revocation store, with retrying connection establishment and health
// checking.
//
// # Usage
//
//	cfg := redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	store := revocation.NewRedisStore(client)
//
// The connection URL follows the redis:// scheme and may carry credentials
// and a database number. Connectivity is verified with a ping before the
// client is returned; transient failures are retried with exponential
// backoff per the Config retry settings.
//
// # Health Checking
//
// Healthcheck returns a probe function suitable for readiness endpoints:
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// report unhealthy
//	}
package redis
