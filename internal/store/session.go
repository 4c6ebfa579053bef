package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"candidate-tracker/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// SessionStore persists the authenticated session so a process restart
// restores it without re-authentication. Remember-me persists an opaque
// server-side token mapped to the user id; the raw credential pair is
// never written anywhere.
type SessionStore interface {
	SaveCurrentUser(ctx context.Context, u *domain.User) error
	LoadCurrentUser(ctx context.Context) (*domain.User, error)
	ClearCurrentUser(ctx context.Context) error
	SaveRememberToken(ctx context.Context, token string, userID uuid.UUID) error
	LookupRememberToken(ctx context.Context, token string) (uuid.UUID, error)
	DeleteRememberToken(ctx context.Context, token string) error
}

const currentUserKey = "currentUser"

type redisSessions struct {
	rdb         *redis.Client
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

func NewRedisSessions(rdb *redis.Client, sessionTTL, rememberTTL time.Duration) SessionStore {
	return &redisSessions{rdb: rdb, sessionTTL: sessionTTL, rememberTTL: rememberTTL}
}

func (r *redisSessions) SaveCurrentUser(ctx context.Context, u *domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, currentUserKey, data, r.sessionTTL).Err()
}

func (r *redisSessions) LoadCurrentUser(ctx context.Context) (*domain.User, error) {
	data, err := r.rdb.Get(ctx, currentUserKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *redisSessions) ClearCurrentUser(ctx context.Context) error {
	return r.rdb.Del(ctx, currentUserKey).Err()
}

func (r *redisSessions) SaveRememberToken(ctx context.Context, token string, userID uuid.UUID) error {
	return r.rdb.Set(ctx, "remember:"+token, userID.String(), r.rememberTTL).Err()
}

func (r *redisSessions) LookupRememberToken(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := r.rdb.Get(ctx, "remember:"+token).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(val)
}

func (r *redisSessions) DeleteRememberToken(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, "remember:"+token).Err()
}

type Claims struct {
	UserID uuid.UUID   `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Login authenticates against the loaded user list and the bcrypt hash on
// the user row. Unknown email and wrong password are the same expected
// failure, ErrInvalidCredentials. On success the session is set and
// persisted; persistence failures are logged, not fatal to the login.
func (s *Store) Login(ctx context.Context, input domain.LoginInput) (*domain.User, *domain.AuthTokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *domain.User
	for i := range s.users {
		if s.users[i].Email == input.Email {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	u := *user
	s.current = &u

	if err := s.sessions.SaveCurrentUser(ctx, &u); err != nil {
		log.Printf("failed to persist session: %v", err)
	}

	access, err := s.signAccessToken(&u)
	if err != nil {
		return nil, nil, err
	}
	tokens := &domain.AuthTokens{AccessToken: access}

	if input.RememberMe {
		token, err := randomToken()
		if err == nil {
			err = s.sessions.SaveRememberToken(ctx, token, u.ID)
		}
		if err != nil {
			log.Printf("failed to store remember token: %v", err)
		} else {
			tokens.RememberToken = token
		}
	}

	out := u
	return &out, tokens, nil
}

// Logout clears the session; clearing the persisted copy is best-effort.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.sessions.ClearCurrentUser(ctx); err != nil {
		log.Printf("failed to clear persisted session: %v", err)
	}
}

// Restore loads a previously persisted session, if any.
func (s *Store) Restore(ctx context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.sessions.LoadCurrentUser(ctx)
	if err != nil || u == nil {
		return nil, err
	}
	s.current = u
	out := *u
	return &out, nil
}

// RestoreRemembered exchanges a remember token for a fresh session.
func (s *Store) RestoreRemembered(ctx context.Context, token string) (*domain.User, *domain.AuthTokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, err := s.sessions.LookupRememberToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	if userID == uuid.Nil {
		return nil, nil, ErrInvalidCredentials
	}

	var user *domain.User
	for i := range s.users {
		if s.users[i].ID == userID {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	u := *user
	s.current = &u
	if err := s.sessions.SaveCurrentUser(ctx, &u); err != nil {
		log.Printf("failed to persist session: %v", err)
	}

	access, err := s.signAccessToken(&u)
	if err != nil {
		return nil, nil, err
	}
	out := u
	return &out, &domain.AuthTokens{AccessToken: access}, nil
}

func (s *Store) signAccessToken(u *domain.User) (string, error) {
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now().Add(s.cfg.JWTAccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *Store) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
