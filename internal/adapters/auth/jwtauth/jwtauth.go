// Package jwtauth verifica y emite bearer tokens HS256. Los roles viajan
// en el claim "groups" y el usuario en "sub" (o "upn").
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petclinic-api/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNoSigningKey = errors.New("jwt signing key is required")
	ErrNoSubject    = errors.New("token has no subject")
)

type Config struct {
	SigningKey []byte
	Issuer     string // opcional; si viene se exige en el token
	Audience   string // opcional; si viene se exige en el token
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UPN    string   `json:"upn,omitempty"`
	Groups []string `json:"groups"`
}

// Verifier implementa auth.AuthVerifier.
type Verifier struct {
	cfg  Config
	opts []jwt.ParserOption
}

func NewVerifier(cfg Config) (*Verifier, error) {
	if len(cfg.SigningKey) == 0 {
		return nil, ErrNoSigningKey
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	return &Verifier{cfg: cfg, opts: opts}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	var c tokenClaims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(token), &c, func(*jwt.Token) (any, error) {
		return v.cfg.SigningKey, nil
	}, v.opts...)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("jwt verify: %w", err)
	}

	uid := strings.TrimSpace(c.Subject)
	if uid == "" {
		uid = strings.TrimSpace(c.UPN)
	}
	if uid == "" {
		return auth.Claims{}, ErrNoSubject
	}
	return auth.Claims{UserID: uid, Roles: c.Groups}, nil
}

// Issuer firma tokens para clientes y para el comando `token` del CLI.
type Issuer struct {
	cfg Config
	now func() time.Time
}

func NewIssuer(cfg Config) (*Issuer, error) {
	if len(cfg.SigningKey) == 0 {
		return nil, ErrNoSigningKey
	}
	return &Issuer{cfg: cfg, now: time.Now}, nil
}

// Issue devuelve un token firmado con un jti único.
func (i *Issuer) Issue(subject string, roles []string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", ErrNoSubject
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	now := i.now()
	c := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    i.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UPN:    subject,
		Groups: roles,
	}
	if i.cfg.Audience != "" {
		c.Audience = jwt.ClaimStrings{i.cfg.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.cfg.SigningKey)
	if err != nil {
		return "", fmt.Errorf("jwt sign: %w", err)
	}
	return signed, nil
}
