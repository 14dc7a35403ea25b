package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/semhq/campaigner/pkg/cookie"
	"github.com/semhq/campaigner/pkg/logger"
	"github.com/semhq/campaigner/pkg/session"
)

const (
	defaultSessionCookieName = "campaigner_sid"
	defaultSessionTTL        = 24 * time.Hour
)

// SessionManager maps a browser cookie to a session in the store.
// Session ids are random UUIDs; a missing, malformed, tampered or expired id
// starts a fresh session instead of failing the request.
type SessionManager struct {
	store      session.Store
	logger     *slog.Logger
	jar        *cookie.Jar
	cookieName string
	secret     string
	ttl        time.Duration
	secure     bool
}

// SessionOption configures the SessionManager.
type SessionOption func(*SessionManager)

// NewSessionManager creates a SessionManager over store.
// It panics when WithSessionSecret was given a secret shorter than
// cookie.MinSecretLength; validate the secret when loading configuration.
func NewSessionManager(store session.Store, opts ...SessionOption) *SessionManager {
	sm := &SessionManager{
		store:      store,
		logger:     logger.NewNope(),
		cookieName: defaultSessionCookieName,
		ttl:        defaultSessionTTL,
	}
	for _, opt := range opts {
		opt(sm)
	}

	jar, err := cookie.New(sm.cookieName, cookie.WithSecret(sm.secret), cookie.WithSecure(sm.secure))
	if err != nil {
		panic("web: session cookie: " + err.Error())
	}
	sm.jar = jar
	return sm
}

// WithSessionCookieName sets the session cookie name.
func WithSessionCookieName(name string) SessionOption {
	return func(sm *SessionManager) {
		if name != "" {
			sm.cookieName = name
		}
	}
}

// WithSessionTTL sets the idle lifetime of a session. Every save extends it.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(sm *SessionManager) {
		if ttl > 0 {
			sm.ttl = ttl
		}
	}
}

// WithSecureCookie marks the session cookie Secure.
func WithSecureCookie(secure bool) SessionOption {
	return func(sm *SessionManager) {
		sm.secure = secure
	}
}

// WithSessionSecret signs the session cookie with HMAC-SHA256.
// An empty secret leaves the cookie unsigned.
func WithSessionSecret(secret string) SessionOption {
	return func(sm *SessionManager) {
		sm.secret = secret
	}
}

// Store returns the backing session store.
func (sm *SessionManager) Store() session.Store {
	return sm.store
}

// Load returns the session referenced by the request cookie, or a new one.
func (sm *SessionManager) Load(ctx context.Context, r *http.Request) (*session.Session, error) {
	id, err := sm.jar.Read(r)
	if err != nil {
		if errors.Is(err, cookie.ErrBadSig) {
			sm.logger.WarnContext(ctx, "ignoring session cookie with bad signature")
		}
		return sm.create(), nil
	}
	if _, err := uuid.Parse(id); err != nil {
		sm.logger.DebugContext(ctx, "ignoring malformed session cookie")
		return sm.create(), nil
	}

	s, err := sm.store.Load(ctx, id)
	if errors.Is(err, session.ErrNotFound) {
		return sm.create(), nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Save persists s and refreshes the cookie when the session changed.
// A new session is not stored until it holds a value.
// It must run before the response headers are written.
func (sm *SessionManager) Save(ctx context.Context, w http.ResponseWriter, s *session.Session) error {
	if s == nil || !s.IsDirty() {
		return nil
	}
	if s.IsNew() && len(s.Values) == 0 {
		return nil
	}
	s.Extend(sm.ttl)
	if err := sm.store.Save(ctx, s); err != nil {
		return err
	}
	s.MarkClean()

	sm.jar.Write(w, s.ID, sm.ttl)
	return nil
}

func (sm *SessionManager) create() *session.Session {
	return session.New(uuid.NewString(), sm.ttl)
}
