package request

import (
	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/usecase/commands"
)

type AuthenticateRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *AuthenticateRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Username, r.Password)
}

type RegisterRequest struct {
	Username   string  `json:"username" binding:"required,min=3,max=50"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8,max=72"`
	FirstName  string  `json:"first_name" binding:"max=100"`
	LastName   string  `json:"last_name" binding:"max=100"`
	AvatarLink *string `json:"avatar_link,omitempty" binding:"omitempty,url"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Username:   r.Username,
		Email:      r.Email,
		Password:   r.Password,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		AvatarLink: r.AvatarLink,
	}
}
