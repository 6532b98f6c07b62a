package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/foliocraft/backend/adapters/persistence"
	authUC "github.com/foliocraft/backend/internal/application/usecase/auth"
	portfolioUC "github.com/foliocraft/backend/internal/application/usecase/portfolio"
	"github.com/foliocraft/backend/pkg/auth"
	"github.com/foliocraft/backend/pkg/logger"
)

// The suite runs the full stack over the file medium in a temp dir, no
// external services needed.
type ServerE2ETestSuite struct {
	suite.Suite
	Router *gin.Engine
}

func (s *ServerE2ETestSuite) SetupTest() {
	medium, err := persistence.NewFileMedium(s.T().TempDir())
	require.NoError(s.T(), err)

	log := logger.NewNop()
	accountRepo := persistence.NewMediumAccountRepo(medium, log)
	portfolioRepo := persistence.NewMediumPortfolioRepo(medium, log)
	jwtSvc := auth.NewJWTService("e2e-secret", time.Hour)

	signUpUseCase := authUC.NewSignUpUseCase(accountRepo, portfolioRepo, jwtSvc, log)
	loginUseCase := authUC.NewLoginUseCase(accountRepo, jwtSvc, log)
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(portfolioRepo, accountRepo, nil, log)

	authHandler := NewAuthHandler(signUpUseCase, loginUseCase)
	portfolioHandler := NewPortfolioHandler(portfolioUseCase)
	assistHandler := NewAssistHandler(nil, log)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.POST("/auth/signup", authHandler.SignUp)
		api.POST("/auth/login", authHandler.Login)

		me := api.Group("/me")
		me.Use(AuthMiddleware(jwtSvc))
		{
			me.GET("/portfolio", portfolioHandler.GetMine)
			me.PUT("/portfolio", portfolioHandler.SaveMine)
			me.POST("/assist/bio", assistHandler.DraftBio)
			me.POST("/assist/polish", assistHandler.PolishText)
		}

		api.GET("/portfolios/:username", portfolioHandler.GetPublished)
	}

	s.Router = router
}

func TestServerE2E(t *testing.T) {
	suite.Run(t, new(ServerE2ETestSuite))
}

func (s *ServerE2ETestSuite) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *ServerE2ETestSuite) signUp(email, username string) string {
	rr := s.doJSON(http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    email,
		"password": "pw123456",
		"username": username,
		"name":     "Alice",
	})
	require.Equal(s.T(), http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(s.T(), resp.AccessToken)
	return resp.AccessToken
}

func (s *ServerE2ETestSuite) Test_SignUp_Duplicates() {
	s.signUp("a@x.com", "alice")

	rr := s.doJSON(http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": "a@x.com", "password": "pw123456", "username": "bob", "name": "Bob",
	})
	assert.Equal(s.T(), http.StatusConflict, rr.Code)

	rr = s.doJSON(http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": "b@x.com", "password": "pw123456", "username": "alice", "name": "Other",
	})
	assert.Equal(s.T(), http.StatusConflict, rr.Code)
}

func (s *ServerE2ETestSuite) Test_Login_Flow() {
	s.signUp("a@x.com", "alice")

	rr := s.doJSON(http.MethodPost, "/api/auth/login", "", gin.H{"email": "a@x.com", "password": "wrongpassword"})
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)

	rr = s.doJSON(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ghost@x.com", "password": "pw123456"})
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)

	rr = s.doJSON(http.MethodPost, "/api/auth/login", "", gin.H{"email": "a@x.com", "password": "pw123456"})
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var resp map[string]json.RawMessage
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(s.T(), resp, "access_token")
	assert.Contains(s.T(), resp, "account")
}

func (s *ServerE2ETestSuite) Test_Portfolio_RequiresAuth() {
	rr := s.doJSON(http.MethodGet, "/api/me/portfolio", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)

	rr = s.doJSON(http.MethodGet, "/api/me/portfolio", "not-a-token", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)
}

func (s *ServerE2ETestSuite) Test_Portfolio_DefaultAndMergeSave() {
	token := s.signUp("a@x.com", "alice")

	rr := s.doJSON(http.MethodGet, "/api/me/portfolio", token, nil)
	require.Equal(s.T(), http.StatusOK, rr.Code)

	var p PortfolioDTO
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(s.T(), "modern", p.Theme)
	assert.Equal(s.T(), "Software Developer", p.Title)
	assert.False(s.T(), p.IsPublished)
	assert.Empty(s.T(), p.Projects)

	rr = s.doJSON(http.MethodPut, "/api/me/portfolio", token, gin.H{"bio": "X"})
	require.Equal(s.T(), http.StatusOK, rr.Code)
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(s.T(), "X", p.Bio)
	// merge, not replace
	assert.Equal(s.T(), "Software Developer", p.Title)
	assert.Equal(s.T(), []string{"JavaScript", "React"}, p.Skills)
}

func (s *ServerE2ETestSuite) Test_Portfolio_RejectsBadTheme() {
	token := s.signUp("a@x.com", "alice")

	rr := s.doJSON(http.MethodPut, "/api/me/portfolio", token, gin.H{"theme": "vaporwave"})
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}

func (s *ServerE2ETestSuite) Test_PublicLookup_PublishFlow() {
	token := s.signUp("a@x.com", "alice")

	// not published yet: same 404 as an unknown username
	rr := s.doJSON(http.MethodGet, "/api/portfolios/alice", "", nil)
	assert.Equal(s.T(), http.StatusNotFound, rr.Code)
	rr = s.doJSON(http.MethodGet, "/api/portfolios/nobody", "", nil)
	assert.Equal(s.T(), http.StatusNotFound, rr.Code)

	rr = s.doJSON(http.MethodPut, "/api/me/portfolio", token, gin.H{
		"is_published": true,
		"projects": []gin.H{
			{"id": "p1", "title": "Demo", "description": "", "image_url": "", "tags": []string{"go"}},
		},
	})
	require.Equal(s.T(), http.StatusOK, rr.Code)

	rr = s.doJSON(http.MethodGet, "/api/portfolios/alice", "", nil)
	require.Equal(s.T(), http.StatusOK, rr.Code)

	var p PortfolioDTO
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &p))
	require.Len(s.T(), p.Projects, 1)
	assert.Equal(s.T(), "p1", p.Projects[0].ID)
	assert.NotNil(s.T(), p.PublishedAt)
}

func (s *ServerE2ETestSuite) Test_Assist_FallbacksWithoutProvider() {
	token := s.signUp("a@x.com", "alice")

	rr := s.doJSON(http.MethodPost, "/api/me/assist/bio", token, gin.H{
		"name": "Alice", "skills": []string{"Go"},
	})
	require.Equal(s.T(), http.StatusOK, rr.Code)

	var resp AssistResponse
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(s.T(), bioFallbackNotConfigured, resp.Text)

	rr = s.doJSON(http.MethodPost, "/api/me/assist/polish", token, gin.H{"text": "my project"})
	require.Equal(s.T(), http.StatusOK, rr.Code)
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(s.T(), "my project", resp.Text)
}
