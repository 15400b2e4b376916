package jwt

import (
	"errors"
	"strings"
	"time"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpiredToken     = errors.New("token expired")
	ErrEmptySecret      = errors.New("signing secret must not be empty")
)

var signingMethod = jwt.SigningMethodHS256

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256 tokens. The secret is fixed at construction and never
// changes for the lifetime of the process.
type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         clock.Clock
	parser        *jwt.Parser
}

// NewService builds the token authority. A zero tokenDuration issues tokens without exp.
func NewService(secretKey string, tokenDuration time.Duration, c clock.Clock) (*Service, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	if c == nil {
		c = clock.NewRealClock()
	}
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         c,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{signingMethod.Alg()}),
			jwt.WithTimeFunc(c.Now),
			jwt.WithIssuedAt(),
		),
	}, nil
}

func (s *Service) TokenDuration() time.Duration {
	return s.tokenDuration
}

func (s *Service) Issue(subjectID uuid.UUID, role user.Role) (string, error) {
	if subjectID == uuid.Nil || !role.IsValid() {
		return "", ErrMalformedToken
	}

	now := s.clock.Now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subjectID.String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.tokenDuration))
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	return token.SignedString(s.secretKey)
}

// Verify checks the HMAC over the raw signing input before any claim is decoded, so a
// payload altered in transit reports ErrInvalidSignature rather than a decode failure.
func (s *Service) Verify(tokenString string) (auth.Principal, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return auth.Principal{}, ErrMalformedToken
	}

	sig, err := s.parser.DecodeSegment(parts[2])
	if err != nil {
		return auth.Principal{}, ErrMalformedToken
	}
	if err := signingMethod.Verify(parts[0]+"."+parts[1], sig, s.secretKey); err != nil {
		return auth.Principal{}, ErrInvalidSignature
	}

	token, err := s.parser.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		return auth.Principal{}, classify(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return auth.Principal{}, ErrMalformedToken
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil || subjectID == uuid.Nil {
		return auth.Principal{}, ErrMalformedToken
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return auth.Principal{}, ErrMalformedToken
	}

	return auth.NewPrincipal(subjectID, role), nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSignature
	default:
		return ErrMalformedToken
	}
}
