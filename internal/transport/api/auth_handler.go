package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/service"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserRegisterParams struct {
	Username string `binding:"required,min=3,max=20"        json:"username"`
	Email    string `binding:"required,email,max_bytes=255" json:"email"`
	Password string `binding:"required,min=8,max_bytes=72"  json:"password"`
	Phone    string `binding:"required,min=11,max_bytes=20" json:"phone"`
}

type RegisterResponse struct {
	Profile ProfileResponse `json:"profile"`
	Token   string          `json:"token"`
	Outcome OutcomeResponse `json:"outcome"`
}

// Register POST RouteGroup + RegisterRoute. Создает аккаунт по одобренной заявке и аутентифицирует
// пользователя.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.userService.Register(ctx, service.RegisterUserArgs{
		Username: params.Username,
		Email:    params.Email,
		Password: params.Password,
		Phone:    params.Phone,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+res.Token)
	c.JSON(http.StatusCreated, RegisterResponse{
		Profile: newProfileResponse(res.Profile),
		Token:   res.Token,
		Outcome: newOutcomeResponse(res.Outcome),
	})
}

type UserLoginParams struct {
	Email    string `binding:"required,email,max_bytes=255" json:"email"`
	Password string `binding:"required,max_bytes=72"        json:"password"`
}

type LoginResponse struct {
	UserID   string `json:"userId"`
	Token    string `json:"token"`
	Admin    bool   `json:"admin"`
	Invested bool   `json:"invested"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре email/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.userService.Login(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+res.Token)
	c.JSON(http.StatusOK, LoginResponse{
		UserID:   res.UserID.String(),
		Token:    res.Token,
		Admin:    res.Admin,
		Invested: res.Invested,
	})
}
