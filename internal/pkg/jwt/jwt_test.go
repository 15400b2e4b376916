//go:build unit

package jwt_test

import (
	"strings"
	"testing"
	"time"

	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

var issuedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T, d time.Duration) (*jwt.Service, *clock.MockClock) {
	t.Helper()
	c := clock.NewMockClock(issuedAt)
	s, err := jwt.NewService(secret, d, c)
	require.NoError(t, err)
	return s, c
}

func signRaw(t *testing.T, method gojwt.SigningMethod, key string, claims gojwt.MapClaims) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(method, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return tok
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	s, _ := newService(t, time.Hour)

	for _, role := range []user.Role{user.RoleUser, user.RoleEmployee, user.RoleAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			id := uuid.New()
			token, err := s.Issue(id, role)
			require.NoError(t, err)
			assert.Len(t, strings.Split(token, "."), 3)

			p, err := s.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, id, p.SubjectID)
			assert.Equal(t, role, p.Role)
		})
	}
}

func TestIssueRejectsBadInput(t *testing.T) {
	s, _ := newService(t, time.Hour)

	_, err := s.Issue(uuid.Nil, user.RoleUser)
	require.ErrorIs(t, err, jwt.ErrMalformedToken)

	_, err = s.Issue(uuid.New(), user.Role("root"))
	require.ErrorIs(t, err, jwt.ErrMalformedToken)
}

func TestNewServiceRequiresSecret(t *testing.T) {
	_, err := jwt.NewService("", time.Hour, nil)
	require.ErrorIs(t, err, jwt.ErrEmptySecret)
}

func TestVerifyTamperedPayload(t *testing.T) {
	s, _ := newService(t, time.Hour)
	token, err := s.Issue(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	payload := []byte(parts[1])

	for i := range payload {
		tampered := make([]byte, len(payload))
		copy(tampered, payload)
		if tampered[i] == 'A' {
			tampered[i] = 'B'
		} else {
			tampered[i] = 'A'
		}

		forged := parts[0] + "." + string(tampered) + "." + parts[2]
		_, err := s.Verify(forged)
		require.ErrorIs(t, err, jwt.ErrInvalidSignature, "byte %d", i)
	}
}

func TestVerifyElevatedRoleForgery(t *testing.T) {
	s, _ := newService(t, time.Hour)
	token, err := s.Issue(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	// Same header and signature, payload re-signed by someone without the secret.
	forged := signRaw(t, gojwt.SigningMethodHS256, "attacker-secret", gojwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "admin",
		"iat":  issuedAt.Unix(),
	})
	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")

	_, err = s.Verify(parts[0] + "." + forgedParts[1] + "." + parts[2])
	require.ErrorIs(t, err, jwt.ErrInvalidSignature)

	_, err = s.Verify(forged)
	require.ErrorIs(t, err, jwt.ErrInvalidSignature)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	s, _ := newService(t, time.Hour)

	hs512 := signRaw(t, gojwt.SigningMethodHS512, secret, gojwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "admin",
		"iat":  issuedAt.Unix(),
	})
	_, err := s.Verify(hs512)
	require.ErrorIs(t, err, jwt.ErrInvalidSignature)
}

func TestVerifyExpiry(t *testing.T) {
	s, c := newService(t, time.Hour)
	token, err := s.Issue(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	c.Set(issuedAt.Add(59 * time.Minute))
	_, err = s.Verify(token)
	require.NoError(t, err)

	c.Set(issuedAt.Add(time.Hour))
	_, err = s.Verify(token)
	require.ErrorIs(t, err, jwt.ErrExpiredToken, "now == exp is already expired")

	c.Set(issuedAt.Add(2 * time.Hour))
	_, err = s.Verify(token)
	require.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestVerifyWithoutExpiry(t *testing.T) {
	s, c := newService(t, 0)
	token, err := s.Issue(uuid.New(), user.RoleAdmin)
	require.NoError(t, err)

	c.Set(issuedAt.AddDate(10, 0, 0))
	p, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, p.Role)
	assert.Zero(t, s.TokenDuration())
}

func TestVerifyMalformed(t *testing.T) {
	s, _ := newService(t, time.Hour)

	cases := map[string]string{
		"empty":             "",
		"two segments":      "aaa.bbb",
		"four segments":     "aaa.bbb.ccc.ddd",
		"empty segments":    "..",
		"bad signature b64": "eyJhbGciOiJIUzI1NiJ9.e30.***",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Verify(token)
			require.ErrorIs(t, err, jwt.ErrMalformedToken)
		})
	}

	claimCases := map[string]gojwt.MapClaims{
		"subject not a uuid": {"sub": "alice", "role": "user", "iat": issuedAt.Unix()},
		"missing subject":    {"role": "user", "iat": issuedAt.Unix()},
		"unknown role":       {"sub": uuid.NewString(), "role": "root", "iat": issuedAt.Unix()},
		"missing role":       {"sub": uuid.NewString(), "iat": issuedAt.Unix()},
	}
	for name, claims := range claimCases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Verify(signRaw(t, gojwt.SigningMethodHS256, secret, claims))
			require.ErrorIs(t, err, jwt.ErrMalformedToken)
		})
	}
}
