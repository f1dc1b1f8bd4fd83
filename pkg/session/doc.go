// Package session holds the server-side session records issued by the
// remoteauth provider and the machinery to persist and transport them.
//
// A Session is immutable once created: the provider that issued it never
// updates its stored metadata, it only rehydrates the record as-is or deletes
// it on logout. Pluggable back-ends implement the Store interface; a
// concurrent in-memory store and a Redis store ship out of the box. Session
// ids move between client and server through a Transport — signed cookies by
// default, with a header transport for proxy chains.
//
// # Usage
//
//	store := session.NewMemoryStore(5 * time.Minute)
//
//	sess, err := session.New(userID, "alice", 30*24*time.Hour)
//	if err != nil {
//	    // handle error
//	}
//	if err := store.Create(ctx, sess); err != nil {
//	    // handle error
//	}
//
// Redis back-end:
//
//	store := session.NewRedisStore(redisClient)
//
// Expiry is enforced on read everywhere; the memory store additionally runs a
// janitor goroutine, while the Redis store leans on native key TTLs.
package session
