// Package redis provides the Redis connection helper behind the Redis
// session store. Config is populated from environment variables; Connect
// retries until Redis answers a ping or the connect timeout expires.
package redis
