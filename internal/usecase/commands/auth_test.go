//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/pkg/password"
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/tests/common/builder"
	"pet-resort-api/tests/common/uowtest"
	commandsmock "pet-resort-api/tests/mock/commands"
	queriesmock "pet-resort-api/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockUserReadStore
	mockTokens    *commandsmock.MockTokenIssuer
	store         *uowtest.Memory
	cmds          commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.mockTokens = commandsmock.NewMockTokenIssuer(s.mockCtrl)
	s.store = uowtest.NewMemory()
	s.cmds = commands.NewAuthCommands(s.store, s.mockReadStore, s.mockTokens, clock.NewMockClock(wednesday))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) credentials(username, pw string) auth.Credentials {
	c, err := auth.NewCredentials(username, pw)
	s.Require().NoError(err)
	return c
}

func (s *AuthCommandsTestSuite) TestAuthenticate() {
	ub := builder.NewUserBuilder().AsEmployee()
	hash, err := password.Hash(ub.Password, password.MinCost)
	s.Require().NoError(err)
	view := ub.BuildView()

	s.Run("success issues a token for the stored role", func() {
		s.mockReadStore.EXPECT().FindByUsername(gomock.Any(), ub.Username).Return(view, hash, nil)
		s.mockTokens.EXPECT().Issue(view.ID, user.RoleEmployee).Return("signed-token", nil)
		s.mockTokens.EXPECT().TokenDuration().Return(time.Hour)

		res, err := s.cmds.Authenticate(context.Background(), s.credentials(ub.Username, ub.Password))

		s.Require().NoError(err)
		s.Equal("signed-token", res.Token)
		s.Equal(time.Hour, res.ExpiresIn)
		s.Equal(view, res.User)
	})

	s.Run("unknown user and wrong password are indistinguishable", func() {
		s.mockReadStore.EXPECT().FindByUsername(gomock.Any(), "ghost_user").
			Return(nil, "", infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound))
		_, errUnknown := s.cmds.Authenticate(context.Background(), s.credentials("ghost_user", ub.Password))

		s.mockReadStore.EXPECT().FindByUsername(gomock.Any(), ub.Username).Return(view, hash, nil)
		_, errWrong := s.cmds.Authenticate(context.Background(), s.credentials(ub.Username, "wrong-password"))

		s.True(errs.Is(errUnknown, commands.ErrInvalidCredentials))
		s.True(errs.Is(errWrong, commands.ErrInvalidCredentials))
		s.Equal(errUnknown.Error(), errWrong.Error())
	})

	s.Run("read store failure is not reported as bad credentials", func() {
		s.mockReadStore.EXPECT().FindByUsername(gomock.Any(), ub.Username).
			Return(nil, "", infra.WrapRepoErr("query failed", errors.New("conn refused"), infra.KindDBFailure))

		_, err := s.cmds.Authenticate(context.Background(), s.credentials(ub.Username, ub.Password))

		s.True(errs.Is(err, commands.ErrAuthenticationFailed))
		s.False(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("token issue failure", func() {
		s.mockReadStore.EXPECT().FindByUsername(gomock.Any(), ub.Username).Return(view, hash, nil)
		s.mockTokens.EXPECT().Issue(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))

		_, err := s.cmds.Authenticate(context.Background(), s.credentials(ub.Username, ub.Password))

		s.True(errs.Is(err, commands.ErrTokenGeneration))
	})
}

func (s *AuthCommandsTestSuite) TestRegister() {
	input := commands.RegisterInput{
		Username:  "new_owner",
		Email:     "owner@example.com",
		Password:  "password123",
		FirstName: "New",
		LastName:  "Owner",
	}

	s.Run("creates a user with the user role", func() {
		view, err := s.cmds.Register(context.Background(), input)

		s.Require().NoError(err)
		s.Equal("new_owner", view.Username)
		s.Equal(user.RoleUser.String(), view.Role)
	})

	s.Run("duplicate username", func() {
		_, err := s.cmds.Register(context.Background(), input)
		s.True(errs.Is(err, commands.ErrUserAlreadyExists))
	})

	s.Run("invalid input", func() {
		cases := map[string]func(*commands.RegisterInput){
			"short username": func(in *commands.RegisterInput) { in.Username = "ab" },
			"bad email":      func(in *commands.RegisterInput) { in.Email = "not-an-email" },
			"weak password":  func(in *commands.RegisterInput) { in.Password = "short" },
		}
		for name, mutate := range cases {
			s.Run(name, func() {
				in := input
				in.Username = "another_owner"
				in.Email = "another@example.com"
				mutate(&in)

				_, err := s.cmds.Register(context.Background(), in)
				s.True(errs.Is(err, commands.ErrInvalidRegistration))
			})
		}
	})
}
