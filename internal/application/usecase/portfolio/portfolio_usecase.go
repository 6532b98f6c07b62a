package portfolio

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/foliocraft/backend/adapters/event"
	"github.com/foliocraft/backend/internal/domain/account"
	"github.com/foliocraft/backend/internal/domain/portfolio"
	"github.com/foliocraft/backend/pkg/apperror"
	"github.com/foliocraft/backend/pkg/logger"
)

var tracer = otel.Tracer("portfolio_usecase")

type PortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	accountRepo   account.Repository
	events        event.Publisher
	logger        logger.Logger
}

// NewPortfolioUseCase wires the document operations. events may be nil when
// no broker is configured; publish transitions are then silent.
func NewPortfolioUseCase(portfolios portfolio.Repository, accounts account.Repository, events event.Publisher, log logger.Logger) *PortfolioUseCase {
	return &PortfolioUseCase{
		portfolioRepo: portfolios,
		accountRepo:   accounts,
		events:        events,
		logger:        log,
	}
}

type GetInput struct {
	OwnerID uuid.UUID
}

type GetOutput struct {
	Portfolio *portfolio.Portfolio
}

func (uc *PortfolioUseCase) ExecuteGet(ctx context.Context, input GetInput) (*GetOutput, error) {
	ctx, span := tracer.Start(ctx, "GetPortfolio")
	defer span.End()

	p, err := uc.portfolioRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &GetOutput{Portfolio: p}, nil
}

type SaveInput struct {
	OwnerID uuid.UUID
	Patch   portfolio.Patch
}

type SaveOutput struct {
	Portfolio *portfolio.Portfolio
}

// ExecuteSave overlays the patch on the stored document. It never creates a
// document; signup is the only creation path.
func (uc *PortfolioUseCase) ExecuteSave(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	ctx, span := tracer.Start(ctx, "SavePortfolio")
	defer span.End()

	if err := input.Patch.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	prior, err := uc.portfolioRepo.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	wasPublished := prior.IsPublished

	now := time.Now().UTC()
	merged, err := uc.portfolioRepo.ApplyPatch(ctx, input.OwnerID, input.Patch, now)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if merged.IsPublished != wasPublished {
		uc.emitPublishEvent(ctx, merged, now)
	}

	return &SaveOutput{Portfolio: merged}, nil
}

// emitPublishEvent is best-effort; a dead broker must not fail the save.
func (uc *PortfolioUseCase) emitPublishEvent(ctx context.Context, p *portfolio.Portfolio, now time.Time) {
	if uc.events == nil {
		return
	}

	evt := event.PortfolioEvent{
		OwnerID:    p.OwnerID,
		Published:  p.IsPublished,
		OccurredAt: now,
	}
	if acc, err := uc.accountRepo.FindByID(ctx, p.OwnerID); err == nil {
		evt.Username = acc.Username
	}

	if err := uc.events.PortfolioPublished(ctx, evt); err != nil {
		uc.logger.Warn("failed to emit portfolio event",
			zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
	}
}

type GetPublishedInput struct {
	Username string
}

type GetPublishedOutput struct {
	Portfolio *portfolio.Portfolio
}

// ExecuteGetPublished resolves a public page by username. Unknown username,
// missing document and unpublished document all collapse to the same
// not-found result; callers cannot tell "absent" from "private".
func (uc *PortfolioUseCase) ExecuteGetPublished(ctx context.Context, input GetPublishedInput) (*GetPublishedOutput, error) {
	ctx, span := tracer.Start(ctx, "GetPublishedPortfolio")
	defer span.End()

	acc, err := uc.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, portfolio.ErrPortfolioNotFound
		}
		span.RecordError(err)
		return nil, err
	}

	p, err := uc.portfolioRepo.GetByOwner(ctx, acc.ID)
	if err != nil {
		return nil, err
	}
	if !p.IsPublished {
		return nil, portfolio.ErrPortfolioNotFound
	}

	return &GetPublishedOutput{Portfolio: p}, nil
}
