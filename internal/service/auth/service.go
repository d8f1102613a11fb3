package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/scon-hq/scon-backend-go/internal/domain/auth"
	"github.com/scon-hq/scon-backend-go/internal/domain/owner"
	"github.com/scon-hq/scon-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	ownerRepo  owner.OwnerRepository
	jwtService jwt.Service
}

func NewAuthService(ownerRepo owner.OwnerRepository, jwtService jwt.Service) auth.AuthService {
	return &authServiceImpl{
		ownerRepo:  ownerRepo,
		jwtService: jwtService,
	}
}

// Signup implements auth.AuthService.
func (s *authServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	exists, err := s.ownerRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, owner.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newOwner := &owner.Owner{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
	}
	if err := s.ownerRepo.Create(ctx, newOwner); err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(newOwner)
}

// Login implements auth.AuthService.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	found, err := s.ownerRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, owner.ErrOwnerNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(found)
}

// RefreshToken implements auth.AuthService.
func (s *authServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	ownerID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	found, err := s.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(found.ID, found.Email)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// Me implements auth.AuthService.
func (s *authServiceImpl) Me(ctx context.Context) (auth.OwnerResponse, error) {
	ownerID, err := OwnerIDFromContext(ctx)
	if err != nil {
		return auth.OwnerResponse{}, err
	}

	found, err := s.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		return auth.OwnerResponse{}, err
	}

	return auth.OwnerResponse{
		ID:          found.ID,
		Email:       found.Email,
		Name:        found.Name,
		PhoneNumber: found.PhoneNumber,
	}, nil
}

func (s *authServiceImpl) issueTokens(o *owner.Owner) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(o.ID, o.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(o.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}

// OwnerIDFromContext extracts the authenticated owner's ID from the JWT
// claims the auth middleware put on the context.
func OwnerIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	ownerID, ok := claims["owner_id"].(string)
	if !ok || ownerID == "" {
		return "", fmt.Errorf("owner_id claim is missing or invalid")
	}
	return ownerID, nil
}
