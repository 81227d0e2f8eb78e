package community

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"motocat-backend/internal/model"
)

var (
	ErrNotFound  = stderrors.New("not found")
	ErrForbidden = stderrors.New("not the owner")
)

// Store persists ratings, comments, favorites and garage entries.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Rate upserts the user's rating for a bike and recomputes the bike's rating
// aggregate inside one transaction, so a re-rating never double-counts.
func (s *Store) Rate(ctx context.Context, userID, bikeID uint, stars int) (*model.Rating, error) {
	rating := &model.Rating{
		ID:           uuid.NewString(),
		MotorcycleID: bikeID,
		UserID:       userID,
		Stars:        stars,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "motorcycle_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"stars", "updated_at"}),
		}).Create(rating).Error
		if err != nil {
			return err
		}
		// A re-rating keeps the original row; re-read so the caller sees the
		// stored id rather than the freshly generated one. A fresh struct is
		// required here: First would otherwise use rating's primary key as a
		// condition.
		var stored model.Rating
		err = tx.Where("motorcycle_id = ? AND user_id = ?", bikeID, userID).First(&stored).Error
		if err != nil {
			return err
		}
		*rating = stored

		var agg struct {
			Avg   float64
			Count int64
		}
		err = tx.Model(&model.Rating{}).
			Select("coalesce(avg(stars), 0) as avg, count(*) as count").
			Where("motorcycle_id = ?", bikeID).
			Scan(&agg).Error
		if err != nil {
			return err
		}
		return tx.Model(&model.Motorcycle{}).
			Where("id = ?", bikeID).
			Updates(map[string]interface{}{
				"rating_avg":   agg.Avg,
				"rating_count": agg.Count,
			}).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "rate motorcycle")
	}
	return rating, nil
}

// RatingSummary returns the aggregate for one bike.
func (s *Store) RatingSummary(ctx context.Context, bikeID uint) (avg float64, count int64, err error) {
	var agg struct {
		Avg   float64
		Count int64
	}
	err = s.db.WithContext(ctx).Model(&model.Rating{}).
		Select("coalesce(avg(stars), 0) as avg, count(*) as count").
		Where("motorcycle_id = ?", bikeID).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, errors.Wrap(err, "rating summary")
	}
	return agg.Avg, agg.Count, nil
}

// AddComment stores a comment under the bike.
func (s *Store) AddComment(ctx context.Context, userID uint, username string, bikeID uint, body string) (*model.Comment, error) {
	c := &model.Comment{
		ID:           uuid.NewString(),
		MotorcycleID: bikeID,
		UserID:       userID,
		Username:     username,
		Body:         body,
	}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, errors.Wrap(err, "add comment")
	}
	return c, nil
}

// Comments lists a bike's comments newest-first.
func (s *Store) Comments(ctx context.Context, bikeID uint, limit, offset int) ([]model.Comment, error) {
	var out []model.Comment
	err := s.db.WithContext(ctx).
		Where("motorcycle_id = ?", bikeID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, errors.Wrap(err, "list comments")
	}
	return out, nil
}

// DeleteComment removes a comment if it belongs to the user.
func (s *Store) DeleteComment(ctx context.Context, userID uint, commentID string) error {
	var c model.Comment
	err := s.db.WithContext(ctx).First(&c, "id = ?", commentID).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "load comment")
	}
	if c.UserID != userID {
		return ErrForbidden
	}
	return errors.Wrap(s.db.WithContext(ctx).Delete(&c).Error, "delete comment")
}

// AddFavorite marks a bike as favorited; repeating is a no-op.
func (s *Store) AddFavorite(ctx context.Context, userID, bikeID uint) error {
	fav := &model.Favorite{UserID: userID, MotorcycleID: bikeID, CreatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(fav).Error
	return errors.Wrap(err, "add favorite")
}

// RemoveFavorite unmarks a bike.
func (s *Store) RemoveFavorite(ctx context.Context, userID, bikeID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND motorcycle_id = ?", userID, bikeID).
		Delete(&model.Favorite{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "remove favorite")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Favorites lists the user's favorited motorcycles.
func (s *Store) Favorites(ctx context.Context, userID uint) ([]model.Motorcycle, error) {
	var bikes []model.Motorcycle
	err := s.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.motorcycle_id = motorcycles.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at desc").
		Find(&bikes).Error
	if err != nil {
		return nil, errors.Wrap(err, "list favorites")
	}
	return bikes, nil
}

// AddGarageEntry records a bike the user owns.
func (s *Store) AddGarageEntry(ctx context.Context, userID uint, req model.GarageRequest) (*model.GarageEntry, error) {
	entry := &model.GarageEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		MotorcycleID: req.MotorcycleID,
		Nickname:     req.Nickname,
		PurchaseYear: req.PurchaseYear,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, errors.Wrap(err, "add garage entry")
	}
	return entry, nil
}

// RemoveGarageEntry deletes an entry if it belongs to the user.
func (s *Store) RemoveGarageEntry(ctx context.Context, userID uint, entryID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&model.GarageEntry{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "remove garage entry")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Garage lists the user's garage entries newest-first.
func (s *Store) Garage(ctx context.Context, userID uint) ([]model.GarageEntry, error) {
	var out []model.GarageEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	if err != nil {
		return nil, errors.Wrap(err, "list garage")
	}
	return out, nil
}
