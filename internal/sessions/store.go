package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ferrestock/internal/models"
)

// Session is the server-side state bound to a logged-in user. It lives in
// Redis; the client only ever holds a signed token naming it.
type Session struct {
	UserID  int    `json:"usuario_id"`
	Usuario string `json:"usuario"`
	Nombre  string `json:"nombre"`
	Rol     string `json:"rol"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Rol == models.RolAdmin
}

type Store interface {
	// Create persists the session and returns the signed token to hand to
	// the client.
	Create(ctx context.Context, sess *Session) (string, error)
	// Get resolves a token back to its session. A missing, expired, or
	// tampered token yields (nil, nil): the request proceeds anonymously.
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

type claims struct {
	Sid string `json:"sid"`
	jwt.RegisteredClaims
}

type redisStore struct {
	client *redis.Client
	secret []byte
	ttl    time.Duration
}

func NewRedisStore(addr, password string, db int, secret string, ttl time.Duration) Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisStore{client: client, secret: []byte(secret), ttl: ttl}
}

func sessionKey(sid string) string {
	return "ferrestock:session:" + sid
}

func (s *redisStore) Create(ctx context.Context, sess *Session) (string, error) {
	sid := uuid.NewString()

	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sid), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Sid: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (s *redisStore) Get(ctx context.Context, token string) (*Session, error) {
	sid, ok := s.parseSid(token)
	if !ok {
		return nil, nil
	}

	data, err := s.client.Get(ctx, sessionKey(sid)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	sess := &Session{}
	if err := json.Unmarshal(data, sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return sess, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	sid, ok := s.parseSid(token)
	if !ok {
		return nil
	}
	return s.client.Del(ctx, sessionKey(sid)).Err()
}

func (s *redisStore) parseSid(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", false
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || c.Sid == "" {
		return "", false
	}
	return c.Sid, true
}
