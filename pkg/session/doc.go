// Package session stores per-browser state between requests.
//
// A Session holds string values keyed by name. Stores persist sessions by id:
// MemoryStore for a single process and RedisStore when several instances
// share state. The cookie handling lives in the web layer, which loads the
// session at the start of a request and saves it when it changed.
package session
