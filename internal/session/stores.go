package session

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// Store kinds accepted by the SESSION_STORE setting.
const (
	StoreFilesystem = "filesystem"
	StoreCookie     = "cookie"
	StoreRedis      = "redis"
)

// Options configures the cookie and the lifetime shared by all stores.
type Options struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
}

// keyPairs derives the signing key and the encryption key from the secret.
func (o Options) keyPairs() [][]byte {
	block := sha256.Sum256(o.Secret)
	return [][]byte{o.Secret, block[:]}
}

func (o Options) cookie() *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   int(o.TTL.Seconds()),
		HttpOnly: true,
		Secure:   o.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (o Options) validate() error {
	if len(o.Secret) == 0 {
		return fmt.Errorf("session secret is required")
	}
	if o.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", o.TTL)
	}
	return nil
}

// NewFilesystemStore keeps session records as files under dir; the cookie
// only carries the signed record id.
func NewFilesystemStore(dir string, opts Options) (*sessions.FilesystemStore, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	store := sessions.NewFilesystemStore(dir, opts.keyPairs()...)
	store.MaxAge(int(opts.TTL.Seconds()))
	store.Options = opts.cookie()
	return store, nil
}

// NewCookieStore keeps the whole session, encrypted, in the cookie.
func NewCookieStore(opts Options) (*sessions.CookieStore, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	store := sessions.NewCookieStore(opts.keyPairs()...)
	store.MaxAge(int(opts.TTL.Seconds()))
	store.Options = opts.cookie()
	return store, nil
}

func setCodecMaxAge(codecs []securecookie.Codec, age int) {
	for _, c := range codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			sc.MaxAge(age)
		}
	}
}
