package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/vijitdua/TaskUp/internal/dto"
	"github.com/vijitdua/TaskUp/internal/service"

	"github.com/gin-gonic/gin"
)

// Client-visible status strings. Domain errors render as "Error: <message>";
// internal failures degrade to a generic message with detail kept in logs.
const (
	resSuccess      = "success"
	resTokenValid   = "token valid"
	resTokenInvalid = "invalid token"
	resInternal     = "Error: internal error"
)

// AuthHandler handles signup, login and token validation.
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// SignUp godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignUpRequest  true  "New user"
// @Success      201   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.StatusResponse
// @Failure      409   {object}  dto.StatusResponse
// @Failure      500   {object}  dto.StatusResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{Res: errRes(service.ErrIncompleteData)})
		return
	}
	_, err := h.authSvc.SignUp(c.Request.Context(), req.FirstName, req.LastName, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncompleteData):
			c.JSON(http.StatusBadRequest, dto.StatusResponse{Res: errRes(err)})
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusConflict, dto.StatusResponse{Res: errRes(err)})
		default:
			log.Printf("signup failed for %q: %v", req.Username, err)
			c.JSON(http.StatusInternalServerError, dto.StatusResponse{Res: resInternal})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.StatusResponse{Res: resSuccess})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.LoginErrorResponse
// @Failure      401   {object}  dto.LoginErrorResponse
// @Failure      500   {object}  dto.LoginErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.LoginErrorResponse{Res: errRes(service.ErrIncompleteData)})
		return
	}
	user, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIncompleteData):
			c.JSON(http.StatusBadRequest, dto.LoginErrorResponse{Username: req.Username, Res: errRes(err)})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.LoginErrorResponse{Username: req.Username, Res: errRes(err)})
		default:
			log.Printf("login failed for %q: %v", req.Username, err)
			c.JSON(http.StatusInternalServerError, dto.LoginErrorResponse{Username: req.Username, Res: resInternal})
		}
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Res:       resSuccess,
		Token:     user.Token,
	})
}

// ValidateToken godoc
// @Summary      Check whether a bearer token is valid
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "Token"
// @Success      200   {object}  dto.StatusResponse
// @Failure      500   {object}  dto.StatusResponse
// @Router       /auth/token [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, dto.StatusResponse{Res: resTokenInvalid})
		return
	}
	valid, err := h.authSvc.ValidateToken(c.Request.Context(), req.Token)
	if err != nil {
		log.Printf("token validation failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{Res: resInternal})
		return
	}
	if valid {
		c.JSON(http.StatusOK, dto.StatusResponse{Res: resTokenValid})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Res: resTokenInvalid})
}

func errRes(err error) string {
	return "Error: " + err.Error()
}
