package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/cadastro/internal/app/models"
	appRepos "github.com/yigit/cadastro/internal/app/repositories"
	"github.com/yigit/cadastro/internal/db"
)

// disciplinaStore is the part of the disciplina repository the seeder needs
type disciplinaStore interface {
	ListOrderedByName(ctx context.Context) ([]*appModels.Disciplina, error)
	Create(ctx context.Context, d *appModels.Disciplina) error
}

// CreateDefaultData creates the configured disciplinas that do not exist yet,
// all in one transaction.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, names []string, lgr zerolog.Logger) error {
	lgr.Info().Strs("disciplinas", names).Msg("Checking/Creating default disciplinas...")

	return db.WithTransaction(ctx, dbPool, func(ctx context.Context, tx pgx.Tx) error {
		repo := appRepos.NewDisciplinaRepository(dbPool).WithTx(tx)
		created, err := seedDisciplinas(ctx, repo, names)
		if err != nil {
			return err
		}
		lgr.Info().Int("created", created).Msg("Default disciplinas ready")
		return nil
	})
}

// seedDisciplinas creates every name missing from store and returns how many
// were created. Blank and repeated names are skipped.
func seedDisciplinas(ctx context.Context, store disciplinaStore, names []string) (int, error) {
	existing, err := store.ListOrderedByName(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list disciplinas: %w", err)
	}

	known := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		known[d.Name] = struct{}{}
	}

	created := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := known[name]; ok {
			continue
		}
		if err := store.Create(ctx, &appModels.Disciplina{Name: name}); err != nil {
			return created, fmt.Errorf("failed to create disciplina %q: %w", name, err)
		}
		known[name] = struct{}{}
		created++
	}

	return created, nil
}
