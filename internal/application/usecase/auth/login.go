package auth

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/foliocraft/backend/internal/domain/account"
	"github.com/foliocraft/backend/pkg/apperror"
	"github.com/foliocraft/backend/pkg/auth"
	"github.com/foliocraft/backend/pkg/logger"
)

type LoginUseCase struct {
	accountRepo account.Repository
	jwtSvc      *auth.JWTService
	logger      logger.Logger
}

func NewLoginUseCase(accounts account.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: accounts,
		jwtSvc:      jwtSvc,
		logger:      log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Account     *account.Account
	AccessToken string
}

// Execute verifies the presented password against the stored bcrypt hash.
// The portfolio-builder this replaces accepted any password; that contract
// is intentionally not preserved.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	acc, err := uc.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, acc.PasswordHash) {
		err := apperror.NewUnauthorized("incorrect password", nil)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(acc.ID)
	if err != nil {
		uc.logger.Error("failed to generate token", err, zap.String("account_id", acc.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	span.SetAttributes(attribute.String("account_id", acc.ID.String()))
	return &LoginOutput{Account: acc, AccessToken: token}, nil
}
