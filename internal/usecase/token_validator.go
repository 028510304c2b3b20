package usecase

import (
	"slotbooking/internal/pkg/errs"
	"slotbooking/internal/pkg/jwt"
)

var ErrNotAdmin = errs.New("token does not grant admin access")

type TokenValidator interface {
	ValidateAdminToken(token string) error
}

type jwtTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwt: jwtService}
}

func (v *jwtTokenValidator) ValidateAdminToken(token string) error {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return err
	}
	if !claims.Admin {
		return ErrNotAdmin
	}
	return nil
}
