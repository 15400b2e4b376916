//go:build unit || e2e

package builder

import (
	reqdto "pet-resort-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "test_user",
		Password: "password123",
	}
}

func (a *AuthBuilder) WithUsername(username string) *AuthBuilder {
	a.Username = username
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.AuthenticateRequest {
	return reqdto.AuthenticateRequest{
		Username: a.Username,
		Password: a.Password,
	}
}
