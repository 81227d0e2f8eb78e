package seed

import (
	"context"

	"github.com/rs/zerolog/log"

	"motocat-backend/internal/model"
)

// Catalog is the subset of the catalog store the loader writes through.
type Catalog interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, bike *model.Motorcycle) error
}

// Load inserts the static dataset when the catalog table is empty. Restarting
// a seeded deployment is a no-op.
func Load(ctx context.Context, store Catalog) error {
	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info().Int64("existing", n).Msg("catalog already seeded")
		return nil
	}

	for i := range motorcycles {
		bike := motorcycles[i]
		if err := store.Insert(ctx, &bike); err != nil {
			return err
		}
	}
	log.Info().Int("inserted", len(motorcycles)).Msg("catalog seeded")
	return nil
}
