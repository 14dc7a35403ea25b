package session

import "time"

// Session is the per-browser state kept between requests.
// Values are plain strings so every store can round-trip them unchanged.
type Session struct {
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
	Values    map[string]string `json:"values"`
	ID        string            `json:"id"`

	dirty bool
	isNew bool
}

// New creates an empty session that expires after ttl.
func New(id string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Values:    make(map[string]string),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		isNew:     true,
		dirty:     true,
	}
}

// Get returns the value stored under key.
func (s *Session) Get(key string) (string, bool) {
	if s == nil || s.Values == nil {
		return "", false
	}
	v, ok := s.Values[key]
	return v, ok
}

// GetString returns the value stored under key or an empty string.
func (s *Session) GetString(key string) string {
	v, _ := s.Get(key)
	return v
}

// Set stores a value and marks the session for saving.
func (s *Session) Set(key, val string) {
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	if cur, ok := s.Values[key]; ok && cur == val {
		return
	}
	s.Values[key] = val
	s.dirty = true
}

// Delete removes a value. The session is marked dirty only if the key existed.
func (s *Session) Delete(key string) {
	if _, ok := s.Values[key]; ok {
		delete(s.Values, key)
		s.dirty = true
	}
}

// IsDirty reports whether the session has unsaved changes.
func (s *Session) IsDirty() bool { return s.dirty }

// MarkClean is called by the manager after the session was persisted.
func (s *Session) MarkClean() {
	s.dirty = false
	s.isNew = false
}

// IsNew reports whether the session has never been persisted.
func (s *Session) IsNew() bool { return s.isNew }

// IsExpired reports whether the session is past its expiry time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Extend pushes the expiry ttl into the future and marks the session dirty.
func (s *Session) Extend(ttl time.Duration) {
	s.ExpiresAt = time.Now().Add(ttl)
	s.dirty = true
}
