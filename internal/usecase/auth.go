package usecase

import (
	"slotbooking/internal/pkg/config"
	"slotbooking/internal/pkg/errs"
	"slotbooking/internal/pkg/jwt"
	"slotbooking/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrLoginDisabled      = errs.New("admin login is not configured")
)

type AuthCommands interface {
	Login(plainPassword string) (string, error)
}

type authCommandsImpl struct {
	cfg config.AuthConfig
	jwt *jwt.Service
}

func NewAuthCommands(cfg config.AuthConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{cfg: cfg, jwt: jwtService}
}

func (a *authCommandsImpl) Login(plainPassword string) (string, error) {
	if a.cfg.AdminPasswordHash == "" {
		return "", ErrLoginDisabled
	}
	if err := password.Verify(a.cfg.AdminPasswordHash, plainPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	return a.jwt.GenerateAdminToken()
}
