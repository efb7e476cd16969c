package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionCookieName is the cookie that attributes a request to a session.
// This subsystem only reads it; the cookie is issued by the auth service.
const SessionCookieName = "session_id"

type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
	LoginTime time.Time `json:"loginTime"`
}

type SessionStore struct {
	Redis *redis.Client
}

func (s *SessionStore) Create(ctx context.Context, sess Session) error {
	key := "session:" + sess.ID

	data := map[string]interface{}{
		"userId":    sess.UserID,
		"role":      sess.Role,
		"expires":   sess.ExpiresAt.Unix(),
		"loginTime": sess.LoginTime.Unix(),
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Minute
	}

	pipe := s.Redis.TxPipeline()
	pipe.HSet(ctx, key, data)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *SessionStore) Get(ctx context.Context, id string) (*Session, error) {
	key := "session:" + id
	vals, err := s.Redis.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}

	expUnix, _ := strconv.ParseInt(vals["expires"], 10, 64)
	loginUnix, _ := strconv.ParseInt(vals["loginTime"], 10, 64)

	sess := &Session{
		ID:        id,
		UserID:    vals["userId"],
		Role:      vals["role"],
		ExpiresAt: time.Unix(expUnix, 0),
		LoginTime: time.Unix(loginUnix, 0),
	}

	if sess.ExpiresAt.Before(time.Now()) {
		_ = s.Delete(ctx, id)
		return nil, nil
	}

	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.Redis.Del(ctx, "session:"+id).Err()
}

// UserID resolves a session cookie value to its account, or "" when the
// session is missing or expired.
func (s *SessionStore) UserID(ctx context.Context, id string) (string, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", nil
	}
	return sess.UserID, nil
}

func NewSessionID() string {
	return uuid.NewString()
}
