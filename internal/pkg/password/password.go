package password

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errors.New("password is empty")
	ErrMismatch = errors.New("password does not match")
)

const (
	DefaultCost = bcrypt.DefaultCost
	// MinCost keeps test fixtures fast.
	MinCost = bcrypt.MinCost
)

// Hash bcrypt-hashes pw; cost is clamped to bcrypt's accepted range.
func Hash(pw string, cost int) (string, error) {
	if pw == "" {
		return "", ErrEmpty
	}
	cost = min(max(cost, bcrypt.MinCost), bcrypt.MaxCost)

	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports ErrMismatch for a wrong password; other errors mean the stored hash is unusable.
func Verify(hash, pw string) error {
	if hash == "" || pw == "" {
		return ErrEmpty
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

var unknownUserHash = sync.OnceValue(func() string {
	h, _ := Hash("pet-resort-unknown-user", DefaultCost)
	return h
})

// VerifyUnknown spends one bcrypt comparison for a username that does not exist, so the
// response time does not reveal whether the account exists.
func VerifyUnknown(pw string) {
	_ = bcrypt.CompareHashAndPassword([]byte(unknownUserHash()), []byte(pw))
}
