package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"time"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/pkg/password"
	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrInvalidRegistration  = errs.New("invalid registration")
	ErrUserAlreadyExists    = errs.New("username or email already taken")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrAuthenticationFailed = errs.New("authentication failed")
)

type TokenIssuer interface {
	Issue(subjectID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type AuthResult struct {
	User      *queries.UserView
	Token     string
	ExpiresIn time.Duration
}

type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	AvatarLink *string
}

type AuthCommands interface {
	Authenticate(ctx context.Context, credentials auth.Credentials) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*queries.UserView, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	tokens     TokenIssuer
	clock      clock.Clock
	bcryptCost int
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		tokens:     tokens,
		clock:      clock,
		bcryptCost: password.DefaultCost,
	}
}

// Authenticate returns ErrInvalidCredentials for an unknown username and for a wrong
// password alike.
func (a *authCommandsImpl) Authenticate(ctx context.Context, credentials auth.Credentials) (*AuthResult, error) {
	view, hash, err := a.readStore.FindByUsername(ctx, credentials.Username().Value())
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAuthenticationFailed)
		}
		password.VerifyUnknown(credentials.Password().Value())
		return nil, ErrInvalidCredentials
	}

	if err := password.Verify(hash, credentials.Password().Value()); err != nil {
		if !errs.Is(err, password.ErrMismatch) {
			return nil, errs.Mark(err, ErrAuthenticationFailed)
		}
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.tokens.Issue(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		User:      view,
		Token:     token,
		ExpiresIn: a.tokens.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (*queries.UserView, error) {
	username, err := user.NewUsername(input.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}
	pw, err := user.NewPassword(input.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}

	hash, err := password.Hash(pw.Value(), a.bcryptCost)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(username, email, hash, input.FirstName, input.LastName, input.AvatarLink)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return &queries.UserView{
		ID:         u.ID(),
		Username:   u.Username().Value(),
		Email:      u.Email().Value(),
		FirstName:  u.FirstName(),
		LastName:   u.LastName(),
		AvatarLink: u.AvatarLink(),
		Role:       u.Role().String(),
		CreatedAt:  a.clock.Now(),
	}, nil
}
