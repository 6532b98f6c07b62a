package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/foliocraft/backend/internal/application/usecase/portfolio"
	"github.com/foliocraft/backend/pkg/apperror"
)

type PortfolioHandler struct {
	portfolioUseCase *portfolioUC.PortfolioUseCase
}

func NewPortfolioHandler(uc *portfolioUC.PortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{portfolioUseCase: uc}
}

func (h *PortfolioHandler) GetMine(c *gin.Context) {
	ownerID, ok := GetAccountIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("accountID not found in context"))
		return
	}

	output, err := h.portfolioUseCase.ExecuteGet(c.Request.Context(), portfolioUC.GetInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(output.Portfolio))
}

func (h *PortfolioHandler) SaveMine(c *gin.Context) {
	ownerID, ok := GetAccountIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("accountID not found in context"))
		return
	}

	var req SavePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for portfolio save", err))
		return
	}

	output, err := h.portfolioUseCase.ExecuteSave(c.Request.Context(), portfolioUC.SaveInput{
		OwnerID: ownerID,
		Patch:   req.ToDomainPatch(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(output.Portfolio))
}

// GetPublished serves the public page lookup. A private portfolio and a
// missing one produce the same 404.
func (h *PortfolioHandler) GetPublished(c *gin.Context) {
	username := c.Param("username")

	output, err := h.portfolioUseCase.ExecuteGetPublished(c.Request.Context(), portfolioUC.GetPublishedInput{
		Username: username,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPortfolioDTO(output.Portfolio))
}
