//go:build unit || e2e

package builder

import (
	"time"

	"pet-resort-api/internal/domain/user"
	reqdto "pet-resort-api/internal/handler/dto/request"
	"pet-resort-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Password     string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Username:     "test_user",
		Email:        "test@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		FirstName:    "Test",
		LastName:     "User",
		Role:         string(user.RoleUser),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, email, u.PasswordHash, u.FirstName, u.LastName, nil), nil
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = string(role)
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	return u.WithRole(user.RoleAdmin)
}

func (u *UserBuilder) AsEmployee() *UserBuilder {
	return u.WithRole(user.RoleEmployee)
}
