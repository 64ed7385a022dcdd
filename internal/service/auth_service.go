package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"go-pos-ledger/internal/apperrors"
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/pkg/jwt"
)

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	ErrUserInactive       = fmt.Errorf("%w: user account is inactive", apperrors.ErrUnauthorized)
	ErrWrongPassword      = fmt.Errorf("%w: current password is incorrect", apperrors.ErrUnauthorized)
	ErrSessionReplaced    = fmt.Errorf("%w: session expired (logged in on another device)", apperrors.ErrUnauthorized)
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	ResetPassword(email, oldPassword, newPassword string) error
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
}

type LoginResponse struct {
	Token      string             `json:"token"`
	User       model.UserResponse `json:"user"`
	Role       *model.Role        `json:"role"`
	Privileges []string           `json:"privileges"`
}

type TokenValidationResponse struct {
	User       model.UserResponse `json:"user"`
	Role       *model.Role        `json:"role"`
	Privileges []string           `json:"privileges"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Manager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	roleCode := ""
	if user.Role != nil {
		roleCode = user.Role.Code
	}

	// A fresh token version logs out every earlier session.
	version := uuid.New().String()
	if err := s.userRepo.UpdateTokenVersion(user.ID, version); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	user.TokenVersion = version

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.FullName, roleCode, user.GetPrivilegeCodes(), version)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token:      token,
		User:       user.ToResponse(),
		Role:       user.Role,
		Privileges: user.GetPrivilegeCodes(),
	}, nil
}

func (s *authService) ResetPassword(email, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if !user.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}

	if err := user.SetPassword(newPassword); err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	return s.userRepo.ResetCredentials(user.ID, user.Password, uuid.New().String())
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, ErrSessionReplaced
	}

	return &TokenValidationResponse{
		User:       user.ToResponse(),
		Role:       user.Role,
		Privileges: user.GetPrivilegeCodes(),
	}, nil
}
