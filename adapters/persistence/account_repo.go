package persistence

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/foliocraft/backend/internal/domain/account"
	"github.com/foliocraft/backend/pkg/apperror"
	"github.com/foliocraft/backend/pkg/logger"
)

// accountRecord is the persisted shape. The domain struct hides the password
// hash from JSON, so the repository keeps its own mapping.
type accountRecord struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func toAccountRecord(a *account.Account) accountRecord {
	return accountRecord{
		ID:           a.ID,
		Email:        a.Email,
		Username:     a.Username,
		Name:         a.Name,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}
}

func (r accountRecord) toDomain() *account.Account {
	return &account.Account{
		ID:           r.ID,
		Email:        r.Email,
		Username:     r.Username,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

// mediumAccountRepo runs the accounts collection over a Medium. The mutex
// serializes every check-and-insert so two concurrent signups can never both
// pass the duplicate check.
type mediumAccountRepo struct {
	mu     sync.RWMutex
	medium Medium
	logger logger.Logger
}

func NewMediumAccountRepo(medium Medium, log logger.Logger) account.Repository {
	return &mediumAccountRepo{medium: medium, logger: log}
}

func (r *mediumAccountRepo) load(ctx context.Context) ([]accountRecord, error) {
	data, err := r.medium.ReadCollection(ctx, CollectionAccounts)
	if err != nil {
		return nil, apperror.NewUnavailable("failed to read accounts collection", err)
	}
	if data == nil {
		return []accountRecord{}, nil
	}

	var records []accountRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperror.NewInternal("accounts collection is corrupt", err)
	}
	return records, nil
}

func (r *mediumAccountRepo) store(ctx context.Context, records []accountRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return apperror.NewInternal("failed to marshal accounts collection", err)
	}
	if err := r.medium.WriteCollection(ctx, CollectionAccounts, data); err != nil {
		return apperror.NewUnavailable("failed to write accounts collection", err)
	}
	return nil
}

func (r *mediumAccountRepo) Create(ctx context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	email := account.NormalizeEmail(a.Email)
	for _, rec := range records {
		if account.NormalizeEmail(rec.Email) == email {
			return account.ErrEmailTaken
		}
		if rec.Username == a.Username {
			return account.ErrUsernameTaken
		}
	}

	records = append(records, toAccountRecord(a))
	if err := r.store(ctx, records); err != nil {
		return err
	}

	r.logger.Info("account created", zap.String("account_id", a.ID.String()), zap.String("username", a.Username))
	return nil
}

func (r *mediumAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return account.ErrAccountNotFound
	}

	return r.store(ctx, kept)
}

func (r *mediumAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return nil, account.ErrAccountNotFound
}

func (r *mediumAccountRepo) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	email = account.NormalizeEmail(email)
	for _, rec := range records {
		if account.NormalizeEmail(rec.Email) == email {
			return rec.toDomain(), nil
		}
	}
	return nil, account.ErrAccountNotFound
}

func (r *mediumAccountRepo) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Username == username {
			return rec.toDomain(), nil
		}
	}
	return nil, account.ErrAccountNotFound
}
