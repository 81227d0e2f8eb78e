package alerts

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"motocat-backend/internal/model"
)

var ErrNotFound = stderrors.New("alert not found")

// Store persists price alerts. Matching runs inside the update consumer, not
// on the request path.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create registers an active alert for the user.
func (s *Store) Create(ctx context.Context, userID uint, req model.AlertRequest) (*model.PriceAlert, error) {
	alert := &model.PriceAlert{
		ID:             uuid.NewString(),
		UserID:         userID,
		MotorcycleID:   req.MotorcycleID,
		Region:         req.Region,
		TargetPriceUSD: req.TargetPriceUSD,
		Active:         true,
	}
	if err := s.db.WithContext(ctx).Create(alert).Error; err != nil {
		return nil, errors.Wrap(err, "create alert")
	}
	return alert, nil
}

// List returns the user's alerts, active first, newest first.
func (s *Store) List(ctx context.Context, userID uint) ([]model.PriceAlert, error) {
	var out []model.PriceAlert
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("active desc, created_at desc").
		Find(&out).Error
	if err != nil {
		return nil, errors.Wrap(err, "list alerts")
	}
	return out, nil
}

// Delete removes the user's alert.
func (s *Store) Delete(ctx context.Context, userID uint, alertID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", alertID, userID).
		Delete(&model.PriceAlert{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete alert")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MatchActive returns the active alerts satisfied by the bike's new price and
// marks them triggered. An alert fires once; re-running the same update finds
// nothing left to match.
func (s *Store) MatchActive(ctx context.Context, bikeID uint, newPriceUSD float64) ([]model.PriceAlert, error) {
	var matched []model.PriceAlert
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("motorcycle_id = ? AND active = ? AND target_price_usd >= ?", bikeID, true, newPriceUSD).
			Find(&matched).Error
		if err != nil {
			return err
		}
		if len(matched) == 0 {
			return nil
		}
		ids := make([]string, 0, len(matched))
		for _, a := range matched {
			ids = append(ids, a.ID)
		}
		now := time.Now()
		return tx.Model(&model.PriceAlert{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"active":       false,
				"triggered_at": now,
			}).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "match alerts")
	}
	return matched, nil
}
