package service

import (
	"context"
	"fmt"
	"time"

	"github.com/eventos-app/api/internal/domain/entity"
	"github.com/golang-jwt/jwt/v5"
)

type tokenUserStorage interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenService issues the custom tokens served by the companion token server.
//
// Tokens are granted to any known email without checking the password, which
// reproduces the upstream endpoint's behaviour. See DESIGN.md before exposing
// this outside a trusted network.
type TokenService struct {
	storage tokenUserStorage

	secret []byte
	issuer string
	ttl    time.Duration
	clock  func() time.Time
}

func NewTokenService(storage tokenUserStorage, secret []byte, issuer string, ttl time.Duration) *TokenService {
	return &TokenService{
		storage: storage,
		secret:  secret,
		issuer:  issuer,
		ttl:     ttl,
		clock:   time.Now,
	}
}

// IssueForEmail looks the user up by email and returns a signed token for them.
func (s *TokenService) IssueForEmail(ctx context.Context, email string) (string, error) {
	user, err := s.storage.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	now := s.clock()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Parse verifies a token's signature and standard claims and returns the
// subject user id.
func (s *TokenService) Parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.clock),
	)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
