package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/foliocraft/backend/internal/domain/account"
	"github.com/foliocraft/backend/internal/domain/portfolio"
	"github.com/foliocraft/backend/pkg/apperror"
	"github.com/foliocraft/backend/pkg/auth"
	"github.com/foliocraft/backend/pkg/logger"
)

const GinContextKeyAccountID = "accountID"

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyAccountID, claims.AccountID)

		c.Next()
	}
}

func GetAccountIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(GinContextKeyAccountID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return id, true
}

// ErrorMiddleware translates errors attached by handlers into responses.
// Domain sentinels map to their statuses; AppError carries its own mapping.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", err, zap.String("path", c.FullPath()))
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		switch {
		case errors.Is(err, account.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
		case errors.Is(err, account.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
		case errors.Is(err, account.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		case errors.Is(err, portfolio.ErrPortfolioNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "portfolio not found"})
		default:
			log.Error("unhandled request error", err, zap.String("path", c.FullPath()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
	}
}
