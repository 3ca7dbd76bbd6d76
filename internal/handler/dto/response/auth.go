package response

import (
	"boxoffice/internal/usecase/queries"
)

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

type MeResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
