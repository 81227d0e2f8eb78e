package updatebot

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"motocat-backend/internal/kstream"
	"motocat-backend/internal/model"
	"motocat-backend/internal/pricing"
)

const source = "daily-bot"

// Catalog is the subset of the catalog store the bot reads.
type Catalog interface {
	IDs(ctx context.Context) ([]uint, error)
	Get(ctx context.Context, id uint) (*model.Motorcycle, error)
}

// Publisher sends one revision; indirected for tests.
type Publisher func(ctx context.Context, upd model.PriceUpdate) error

// Bot simulates a daily manufacturer price feed: on every tick it samples a
// subset of the catalog, drifts each bike's reference price within +/-5%, and
// occasionally discontinues an aging model. Revisions go out through Kafka;
// applying them is the update consumer's job. There is no retry or recovery:
// a failed run is simply superseded by the next one.
type Bot struct {
	Store    Catalog
	Publish  Publisher    // defaults to kstream.PublishPriceUpdate
	Rand     pricing.Rand // defaults to the locked process-wide source
	Interval time.Duration
	// SampleFraction of the catalog touched per run, in (0, 1]. Default 0.2.
	SampleFraction float64
}

// Run ticks until ctx is canceled. The first run fires after one interval,
// not at startup, so a fresh deployment serves seeded prices for a while.
func (b *Bot) Run(ctx context.Context) {
	interval := b.Interval
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("update bot started")
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := b.RunOnce(ctx); err != nil {
				log.Error().Err(err).Msg("update run failed")
			}
		}
	}
}

// RunOnce performs a single simulated feed pass.
func (b *Bot) RunOnce(ctx context.Context) error {
	rnd := b.Rand
	if rnd == nil {
		rnd = defaultRand{}
	}
	publish := b.Publish
	if publish == nil {
		publish = kstream.PublishPriceUpdate
	}

	ids, err := b.Store.IDs(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	fraction := b.SampleFraction
	if fraction <= 0 || fraction > 1 {
		fraction = 0.2
	}
	count := int(float64(len(ids)) * fraction)
	if count < 1 {
		count = 1
	}

	published := 0
	for _, idx := range sampleIndexes(rnd, len(ids), count) {
		bike, err := b.Store.Get(ctx, ids[idx])
		if err != nil {
			log.Warn().Err(err).Uint("motorcycle_id", ids[idx]).Msg("skipping bike")
			continue
		}
		upd := b.revise(rnd, bike)
		if err := publish(ctx, upd); err != nil {
			log.Error().Err(err).Uint("motorcycle_id", bike.ID).Msg("publish update failed")
			continue
		}
		published++
	}
	log.Info().Int("published", published).Int("sampled", count).Msg("update run complete")
	return nil
}

// revise produces the simulated manufacturer response for one bike.
func (b *Bot) revise(rnd pricing.Rand, bike *model.Motorcycle) model.PriceUpdate {
	// Bounded drift in +/-5% of the current reference price.
	drift := 0.95 + rnd.Float64()*0.10
	upd := model.PriceUpdate{
		MotorcycleID: bike.ID,
		BasePriceUSD: roundCents(bike.BasePriceUSD * drift),
		Source:       source,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	// Models over a decade old have a small chance of going out of production.
	if bike.Status == model.StatusAvailable && bike.Year <= time.Now().Year()-10 && rnd.Float64() < 0.05 {
		upd.Status = string(model.StatusDiscontinued)
	}
	return upd
}

// sampleIndexes returns count distinct indexes in [0, n).
func sampleIndexes(rnd pricing.Rand, n, count int) []int {
	if count > n {
		count = n
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	// Fisher-Yates over the prefix we need.
	for i := 0; i < count; i++ {
		j := i + rnd.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:count]
}

func roundCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

type defaultRand struct{}

func (defaultRand) Float64() float64 { return rand.Float64() }
func (defaultRand) Intn(n int) int   { return rand.Intn(n) }
