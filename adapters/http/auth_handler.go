package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/foliocraft/backend/internal/application/usecase/auth"
	"github.com/foliocraft/backend/internal/domain/account"
	"github.com/foliocraft/backend/pkg/apperror"
)

type AuthHandler struct {
	signUpUseCase *authUC.SignUpUseCase
	loginUseCase  *authUC.LoginUseCase
}

func NewAuthHandler(signUpUC *authUC.SignUpUseCase, loginUC *authUC.LoginUseCase) *AuthHandler {
	return &AuthHandler{
		signUpUseCase: signUpUC,
		loginUseCase:  loginUC,
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for signup", err))
		return
	}

	output, err := h.signUpUseCase.Execute(c.Request.Context(), authUC.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Name:     req.Name,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account":      ToAccountDTO(output.Account),
		"access_token": output.AccessToken,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for login", err))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Unknown email and wrong password look identical to the client.
		if errors.Is(err, account.ErrAccountNotFound) || errors.Is(err, apperror.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email or password is incorrect"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account":      ToAccountDTO(output.Account),
		"access_token": output.AccessToken,
	})
}
