package api

import (
	"errors"
	"net/http"

	reqdto "slotbooking/internal/handler/dto/request"
	resdto "slotbooking/internal/handler/dto/response"
	"slotbooking/internal/handler/httperr"
	"slotbooking/internal/pkg/config"
	"slotbooking/internal/pkg/cookie"
	"slotbooking/internal/pkg/jwt"
	"slotbooking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth      usecase.AuthCommands
	cookieCfg config.CookieConfig
	jwtSvc    *jwt.Service
}

func NewAuthHandler(auth usecase.AuthCommands, cookieCfg config.CookieConfig, jwtSvc *jwt.Service) *AuthHandler {
	return &AuthHandler{auth: auth, cookieCfg: cookieCfg, jwtSvc: jwtSvc}
}

// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) || errors.Is(err, usecase.ErrLoginDisabled) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetAdminToken(c, h.cookieCfg, token, h.jwtSvc.TokenDuration())
	c.JSON(http.StatusOK, resdto.LoginResponse{Ok: true})
}

// @Summary Admin logout
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.LoginResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.LoginResponse{Ok: true})
}

// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MeResponse{Ok: true, Admin: true})
}
