package persistence

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/foliocraft/backend/internal/domain/portfolio"
	"github.com/foliocraft/backend/pkg/apperror"
	"github.com/foliocraft/backend/pkg/logger"
)

// mediumPortfolioRepo keeps the portfolios collection as a map keyed by
// owner id. ApplyPatch holds the write lock across the whole
// read-merge-write cycle; with a whole-collection medium every mutation
// rewrites the blob, so saves are serialized at the collection level.
type mediumPortfolioRepo struct {
	mu     sync.RWMutex
	medium Medium
	logger logger.Logger
}

func NewMediumPortfolioRepo(medium Medium, log logger.Logger) portfolio.Repository {
	return &mediumPortfolioRepo{medium: medium, logger: log}
}

func (r *mediumPortfolioRepo) load(ctx context.Context) (map[string]*portfolio.Portfolio, error) {
	data, err := r.medium.ReadCollection(ctx, CollectionPortfolios)
	if err != nil {
		return nil, apperror.NewUnavailable("failed to read portfolios collection", err)
	}
	if data == nil {
		return map[string]*portfolio.Portfolio{}, nil
	}

	var records map[string]*portfolio.Portfolio
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperror.NewInternal("portfolios collection is corrupt", err)
	}
	return records, nil
}

func (r *mediumPortfolioRepo) store(ctx context.Context, records map[string]*portfolio.Portfolio) error {
	data, err := json.Marshal(records)
	if err != nil {
		return apperror.NewInternal("failed to marshal portfolios collection", err)
	}
	if err := r.medium.WriteCollection(ctx, CollectionPortfolios, data); err != nil {
		return apperror.NewUnavailable("failed to write portfolios collection", err)
	}
	return nil
}

func (r *mediumPortfolioRepo) Create(ctx context.Context, p *portfolio.Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	records[p.OwnerID.String()] = p
	if err := r.store(ctx, records); err != nil {
		return err
	}

	r.logger.Info("portfolio created", zap.String("owner_id", p.OwnerID.String()))
	return nil
}

func (r *mediumPortfolioRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*portfolio.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	p, ok := records[ownerID.String()]
	if !ok {
		return nil, portfolio.ErrPortfolioNotFound
	}
	return p, nil
}

func (r *mediumPortfolioRepo) ApplyPatch(ctx context.Context, ownerID uuid.UUID, patch portfolio.Patch, now time.Time) (*portfolio.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	p, ok := records[ownerID.String()]
	if !ok {
		return nil, portfolio.ErrPortfolioNotFound
	}

	p.Apply(patch, now)
	if err := r.store(ctx, records); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *mediumPortfolioRepo) Delete(ctx context.Context, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	if _, ok := records[ownerID.String()]; !ok {
		return portfolio.ErrPortfolioNotFound
	}
	delete(records, ownerID.String())

	return r.store(ctx, records)
}
