package auth

import (
	"context"
)

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Me(ctx context.Context) (OwnerResponse, error)
}
