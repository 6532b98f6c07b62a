package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/foliocraft/backend/adapters/persistence"
	"github.com/foliocraft/backend/internal/config"
	"github.com/foliocraft/backend/internal/domain/account"
	"github.com/foliocraft/backend/internal/domain/portfolio"
	"github.com/foliocraft/backend/pkg/auth"
	"github.com/foliocraft/backend/pkg/logger"
)

// Seeds a demo account with a published portfolio against the file medium,
// for local frontend work.
func main() {
	fmt.Println("seeding demo account...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	medium, err := persistence.NewFileMedium(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("cannot open storage: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	accountRepo := persistence.NewMediumAccountRepo(medium, appLogger)
	portfolioRepo := persistence.NewMediumPortfolioRepo(medium, appLogger)

	ctx := context.Background()
	now := time.Now().UTC()

	hash, err := auth.HashPassword("demo-password")
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	acc := &account.Account{
		ID:           uuid.New(),
		Email:        "demo@foliocraft.dev",
		Username:     "demo",
		Name:         "Demo Developer",
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := accountRepo.Create(ctx, acc); err != nil {
		log.Fatalf("cannot create demo account: %v", err)
	}

	p := portfolio.NewDefault(acc.ID, acc.Name, now)
	p.Projects = []portfolio.Project{
		{
			ID:          "demo-1",
			Title:       "FolioCraft",
			Description: "A portfolio builder with generative copy assist.",
			Tags:        []string{"go", "gin"},
		},
	}
	p.IsPublished = true
	p.PublishedAt = &now
	if err := portfolioRepo.Create(ctx, p); err != nil {
		log.Fatalf("cannot create demo portfolio: %v", err)
	}

	fmt.Printf("seeded account '%s' (password 'demo-password')\n", acc.Username)
}
