package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliocraft/backend/adapters/persistence"
	"github.com/foliocraft/backend/internal/domain/account"
	"github.com/foliocraft/backend/internal/domain/portfolio"
	"github.com/foliocraft/backend/pkg/apperror"
	"github.com/foliocraft/backend/pkg/auth"
	"github.com/foliocraft/backend/pkg/logger"
)

type testEnv struct {
	signUp        *SignUpUseCase
	login         *LoginUseCase
	jwtSvc        *auth.JWTService
	portfolioRepo portfolio.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	medium, err := persistence.NewFileMedium(t.TempDir())
	require.NoError(t, err)

	log := logger.NewNop()
	accountRepo := persistence.NewMediumAccountRepo(medium, log)
	portfolioRepo := persistence.NewMediumPortfolioRepo(medium, log)
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)

	return &testEnv{
		signUp:        NewSignUpUseCase(accountRepo, portfolioRepo, jwtSvc, log),
		login:         NewLoginUseCase(accountRepo, jwtSvc, log),
		jwtSvc:        jwtSvc,
		portfolioRepo: portfolioRepo,
	}
}

func TestSignUp_CreatesAccountAndDefaultPortfolio(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.signUp.Execute(ctx, SignUpInput{
		Email:    "a@x.com",
		Password: "pw123456",
		Username: "alice",
		Name:     "Alice",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Account)
	assert.NotEqual(t, "", out.Account.ID.String())
	assert.Equal(t, "a@x.com", out.Account.Email)
	assert.NotEmpty(t, out.AccessToken)

	claims, err := env.jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.Account.ID, claims.AccountID)

	p, err := env.portfolioRepo.GetByOwner(ctx, out.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, portfolio.ThemeModern, p.Theme)
	assert.False(t, p.IsPublished)
	assert.Empty(t, p.Projects)
	assert.Equal(t, "Alice", p.DisplayName)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.signUp.Execute(ctx, SignUpInput{Email: "a@x.com", Password: "pw123456", Username: "alice", Name: "Alice"})
	require.NoError(t, err)

	_, err = env.signUp.Execute(ctx, SignUpInput{Email: "a@x.com", Password: "pw123456", Username: "bob", Name: "Bob"})
	assert.ErrorIs(t, err, account.ErrEmailTaken)
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.signUp.Execute(ctx, SignUpInput{Email: "a@x.com", Password: "pw123456", Username: "alice", Name: "Alice"})
	require.NoError(t, err)

	_, err = env.signUp.Execute(ctx, SignUpInput{Email: "b@x.com", Password: "pw123456", Username: "alice", Name: "Other Alice"})
	assert.ErrorIs(t, err, account.ErrUsernameTaken)
}

func TestSignUp_RejectsBlankIdentity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.signUp.Execute(ctx, SignUpInput{Email: "  ", Password: "pw123456", Username: "alice", Name: "Alice"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = env.signUp.Execute(ctx, SignUpInput{Email: "a@x.com", Password: "pw123456", Username: "  ", Name: "Alice"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestLogin_VerifiesPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.signUp.Execute(ctx, SignUpInput{Email: "a@x.com", Password: "correct-horse", Username: "alice", Name: "Alice"})
	require.NoError(t, err)

	out, err := env.login.Execute(ctx, LoginInput{Email: "a@x.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Account.Username)
	assert.NotEmpty(t, out.AccessToken)

	_, err = env.login.Execute(ctx, LoginInput{Email: "a@x.com", Password: "battery-staple"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.login.Execute(context.Background(), LoginInput{Email: "ghost@x.com", Password: "pw"})
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}
