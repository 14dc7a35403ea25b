package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"
)

// MinSecretLength is the shortest accepted signing secret.
const MinSecretLength = 32

var (
	ErrNotFound  = errors.New("cookie: not found")
	ErrBadSecret = errors.New("cookie: secret must be 32+ bytes")
	ErrBadSig    = errors.New("cookie: invalid signature")
)

// Jar reads and writes a single named cookie.
// With a secret the value is stored as base64(value).base64(hmac) and a
// cookie that fails verification is reported as ErrBadSig.
type Jar struct {
	name     string
	path     string
	secret   []byte
	sameSite http.SameSite
	secure   bool
}

// Option configures a Jar.
type Option func(*Jar) error

// New creates a Jar for the cookie called name.
// Defaults: Path "/", HttpOnly, SameSite=Lax, unsigned.
func New(name string, opts ...Option) (*Jar, error) {
	j := &Jar{
		name:     name,
		path:     "/",
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		if err := opt(j); err != nil {
			return nil, err
		}
	}
	return j, nil
}

// WithSecret enables HMAC-SHA256 signing. An empty secret leaves the jar unsigned.
func WithSecret(secret string) Option {
	return func(j *Jar) error {
		if secret == "" {
			return nil
		}
		if len(secret) < MinSecretLength {
			return ErrBadSecret
		}
		j.secret = []byte(secret)
		return nil
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(j *Jar) error {
		j.secure = secure
		return nil
	}
}

// WithPath sets the cookie path.
func WithPath(path string) Option {
	return func(j *Jar) error {
		if path != "" {
			j.path = path
		}
		return nil
	}
}

// Name returns the cookie name.
func (j *Jar) Name() string { return j.name }

// Signed reports whether values are signed.
func (j *Jar) Signed() bool { return j.secret != nil }

// Read returns the cookie value, verified when the jar is signed.
func (j *Jar) Read(r *http.Request) (string, error) {
	c, err := r.Cookie(j.name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	if j.secret == nil {
		return c.Value, nil
	}
	return j.verify(c.Value)
}

// Write sets the cookie for ttl, rounded down to whole seconds.
func (j *Jar) Write(w http.ResponseWriter, value string, ttl time.Duration) {
	if j.secret != nil {
		value = j.sign(value)
	}
	http.SetCookie(w, j.cookie(value, int(ttl.Seconds())))
}

// Clear tells the browser to drop the cookie.
func (j *Jar) Clear(w http.ResponseWriter) {
	http.SetCookie(w, j.cookie("", -1))
}

func (j *Jar) sign(value string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(value)) +
		"." + base64.RawURLEncoding.EncodeToString(j.mac([]byte(value)))
}

func (j *Jar) verify(raw string) (string, error) {
	encValue, encSig, ok := strings.Cut(raw, ".")
	if !ok {
		return "", ErrBadSig
	}
	value, err := base64.RawURLEncoding.DecodeString(encValue)
	if err != nil {
		return "", ErrBadSig
	}
	sig, err := base64.RawURLEncoding.DecodeString(encSig)
	if err != nil {
		return "", ErrBadSig
	}
	if !hmac.Equal(sig, j.mac(value)) {
		return "", ErrBadSig
	}
	return string(value), nil
}

func (j *Jar) mac(value []byte) []byte {
	m := hmac.New(sha256.New, j.secret)
	m.Write(value)
	return m.Sum(nil)
}

func (j *Jar) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     j.name,
		Value:    value,
		Path:     j.path,
		MaxAge:   maxAge,
		Secure:   j.secure,
		HttpOnly: true,
		SameSite: j.sameSite,
	}
}
