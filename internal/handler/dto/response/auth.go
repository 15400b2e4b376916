package response

import (
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/internal/usecase/queries"
)

type AuthenticateResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresIn   int64             `json:"expires_in,omitempty"`
	User        *queries.UserView `json:"user"`
}

func FromAuthResult(r *commands.AuthResult) *AuthenticateResponse {
	return &AuthenticateResponse{
		AccessToken: r.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		User:        r.User,
	}
}
