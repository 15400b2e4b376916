package usecase

import (
	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnauthenticated = errs.New("authentication required")

type TokenVerifier interface {
	Verify(token string) (auth.Principal, error)
}

// Authorizer turns a bearer token into a Principal and checks it against a route policy.
type Authorizer interface {
	Authenticate(token string) (auth.Principal, error)
	AuthorizeRequest(token string, policy auth.Policy, target uuid.UUID) (auth.Principal, error)
}

type authorizerImpl struct {
	verifier TokenVerifier
}

func NewAuthorizer(verifier TokenVerifier) Authorizer {
	return &authorizerImpl{verifier: verifier}
}

// Authenticate marks every verification failure with ErrUnauthenticated; the underlying
// jwt error stays in the chain for logging.
func (a *authorizerImpl) Authenticate(token string) (auth.Principal, error) {
	if token == "" {
		return auth.Principal{}, ErrUnauthenticated
	}
	principal, err := a.verifier.Verify(token)
	if err != nil {
		return auth.Principal{}, errs.Mark(err, ErrUnauthenticated)
	}
	return principal, nil
}

// AuthorizeRequest authenticates the token and evaluates policy against target. A denied
// request gets no principal back, only auth.ErrForbidden.
func (a *authorizerImpl) AuthorizeRequest(token string, policy auth.Policy, target uuid.UUID) (auth.Principal, error) {
	principal, err := a.Authenticate(token)
	if err != nil {
		return auth.Principal{}, err
	}
	if err := auth.Authorize(policy, principal, target); err != nil {
		return auth.Principal{}, err
	}
	return principal, nil
}
