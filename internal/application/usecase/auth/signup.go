package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/foliocraft/backend/internal/domain/account"
	"github.com/foliocraft/backend/internal/domain/portfolio"
	"github.com/foliocraft/backend/pkg/apperror"
	"github.com/foliocraft/backend/pkg/auth"
	"github.com/foliocraft/backend/pkg/logger"
)

var tracer = otel.Tracer("auth_usecase")

type SignUpUseCase struct {
	accountRepo   account.Repository
	portfolioRepo portfolio.Repository
	jwtSvc        *auth.JWTService
	logger        logger.Logger
}

func NewSignUpUseCase(accounts account.Repository, portfolios portfolio.Repository, jwtSvc *auth.JWTService, log logger.Logger) *SignUpUseCase {
	return &SignUpUseCase{
		accountRepo:   accounts,
		portfolioRepo: portfolios,
		jwtSvc:        jwtSvc,
		logger:        log,
	}
}

type SignUpInput struct {
	Email    string
	Password string
	Username string
	Name     string
}

type SignUpOutput struct {
	Account     *account.Account
	AccessToken string
}

// Execute creates the account and its default portfolio together. When the
// portfolio write fails the account insert is rolled back so the two
// collections do not drift apart.
func (uc *SignUpUseCase) Execute(ctx context.Context, input SignUpInput) (*SignUpOutput, error) {
	ctx, span := tracer.Start(ctx, "SignUp")
	defer span.End()

	now := time.Now().UTC()
	acc := &account.Account{
		ID:        uuid.New(),
		Email:     account.NormalizeEmail(input.Email),
		Username:  strings.TrimSpace(input.Username),
		Name:      input.Name,
		CreatedAt: now,
	}
	if err := acc.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}
	acc.PasswordHash = hash

	if err := uc.accountRepo.Create(ctx, acc); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := uc.portfolioRepo.Create(ctx, portfolio.NewDefault(acc.ID, acc.Name, now)); err != nil {
		span.RecordError(err)
		if delErr := uc.accountRepo.Delete(ctx, acc.ID); delErr != nil {
			uc.logger.Error("failed to roll back account after portfolio create failure", delErr,
				zap.String("account_id", acc.ID.String()))
		}
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(acc.ID)
	if err != nil {
		uc.logger.Error("failed to generate token", err, zap.String("account_id", acc.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	span.SetAttributes(attribute.String("account_id", acc.ID.String()))
	return &SignUpOutput{Account: acc, AccessToken: token}, nil
}
