package session

import (
	"encoding/base32"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore is a sessions.Store that keeps session records in Redis.
// Records expire together with the cookie after the configured TTL.
type RedisStore struct {
	Codecs  []securecookie.Codec
	Options *sessions.Options

	client *redis.Client
	ttl    time.Duration
}

var _ sessions.Store = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore backed by client.
func NewRedisStore(client *redis.Client, opts Options) (*RedisStore, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	codecs := securecookie.CodecsFromPairs(opts.keyPairs()...)
	setCodecMaxAge(codecs, int(opts.TTL.Seconds()))

	return &RedisStore{
		Codecs:  codecs,
		Options: opts.cookie(),
		client:  client,
		ttl:     opts.TTL,
	}, nil
}

// Get returns the session cached in the request registry, loading it on first use.
func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns the session referenced by the request cookie, or a fresh one.
// A cookie that does not decode or points to an expired record yields a
// fresh session.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}
	if err := securecookie.DecodeMulti(name, c.Value, &session.ID, s.Codecs...); err != nil {
		return session, err
	}

	data, err := s.client.Get(r.Context(), s.key(session.ID)).Result()
	if errors.Is(err, redis.Nil) {
		session.ID = ""
		return session, nil
	}
	if err != nil {
		return session, err
	}
	if err := securecookie.DecodeMulti(name, data, &session.Values, s.Codecs...); err != nil {
		return session, err
	}

	session.IsNew = false
	return session, nil
}

// Save writes the session record and its cookie. A session with MaxAge <= 0
// is deleted from Redis and its cookie expired.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	ctx := r.Context()

	if session.Options.MaxAge <= 0 {
		if session.ID != "" {
			if err := s.client.Del(ctx, s.key(session.ID)).Err(); err != nil {
				return err
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = strings.TrimRight(
			base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
	}

	data, err := securecookie.EncodeMulti(session.Name(), session.Values, s.Codecs...)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(session.ID), data, s.ttl).Err(); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.Codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *RedisStore) key(id string) string {
	return redisKeyPrefix + id
}
