//go:build unit || e2e

package builder

import (
	request "boxoffice/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "staff@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() request.LoginRequest {
	return request.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}
