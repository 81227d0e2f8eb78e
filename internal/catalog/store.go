package catalog

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"motocat-backend/internal/model"
)

// ErrNotFound is returned when a motorcycle id does not exist.
var ErrNotFound = stderrors.New("motorcycle not found")

// Filter narrows a catalog listing. Zero values mean "no constraint".
type Filter struct {
	Make            string
	Category        string
	Status          string
	MinDisplacement int
	MaxDisplacement int
	MinYear         int
	MaxYear         int
	MaxPriceUSD     float64
	Sort            string // price|year|rating, optional "-" prefix for descending
	Limit           int
	Offset          int
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// sortColumns whitelists sortable fields; anything else falls back to id.
var sortColumns = map[string]string{
	"price":  "base_price_usd",
	"year":   "year",
	"rating": "rating_avg",
}

// Store reads and writes the motorcycle catalog in MySQL via gorm.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns a filtered, sorted page of motorcycles plus the unpaged total.
func (s *Store) List(ctx context.Context, f Filter) ([]model.Motorcycle, int64, error) {
	q := s.db.WithContext(ctx).Model(&model.Motorcycle{})

	if f.Make != "" {
		q = q.Where("make = ?", f.Make)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinDisplacement > 0 {
		q = q.Where("displacement >= ?", f.MinDisplacement)
	}
	if f.MaxDisplacement > 0 {
		q = q.Where("displacement <= ?", f.MaxDisplacement)
	}
	if f.MinYear > 0 {
		q = q.Where("year >= ?", f.MinYear)
	}
	if f.MaxYear > 0 {
		q = q.Where("year <= ?", f.MaxYear)
	}
	if f.MaxPriceUSD > 0 {
		q = q.Where("base_price_usd <= ?", f.MaxPriceUSD)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count motorcycles")
	}

	var bikes []model.Motorcycle
	err := q.Order(OrderClause(f.Sort)).
		Limit(ClampLimit(f.Limit)).
		Offset(ClampOffset(f.Offset)).
		Find(&bikes).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list motorcycles")
	}
	return bikes, total, nil
}

// Get returns one motorcycle by id.
func (s *Store) Get(ctx context.Context, id uint) (*model.Motorcycle, error) {
	var bike model.Motorcycle
	err := s.db.WithContext(ctx).First(&bike, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get motorcycle")
	}
	return &bike, nil
}

// Makes returns the distinct manufacturers present in the catalog, for the
// filter facets on the listing page.
func (s *Store) Makes(ctx context.Context) ([]string, error) {
	var makes []string
	err := s.db.WithContext(ctx).
		Model(&model.Motorcycle{}).
		Distinct("make").
		Order("make").
		Pluck("make", &makes).Error
	if err != nil {
		return nil, errors.Wrap(err, "list makes")
	}
	return makes, nil
}

// ApplyPriceUpdate overwrites the price (and optionally status) fields from a
// daily-update event. Re-applying the same event is a no-op beyond the
// overwrite; there is no cross-row transactionality.
func (s *Store) ApplyPriceUpdate(ctx context.Context, upd model.PriceUpdate) error {
	fields := map[string]interface{}{
		"base_price_usd": upd.BasePriceUSD,
	}
	if upd.Status != "" {
		fields["status"] = upd.Status
	}
	res := s.db.WithContext(ctx).
		Model(&model.Motorcycle{}).
		Where("id = ?", upd.MotorcycleID).
		Updates(fields)
	if res.Error != nil {
		return errors.Wrap(res.Error, "apply price update")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IDs returns every catalog id; the update bot samples from this set.
func (s *Store) IDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Model(&model.Motorcycle{}).Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "list motorcycle ids")
	}
	return ids, nil
}

// Count returns the catalog size.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Motorcycle{}).Count(&n).Error
	return n, errors.Wrap(err, "count motorcycles")
}

// Insert adds a motorcycle row (used by the seed loader).
func (s *Store) Insert(ctx context.Context, bike *model.Motorcycle) error {
	return errors.Wrap(s.db.WithContext(ctx).Create(bike).Error, "insert motorcycle")
}

// OrderClause maps a user-supplied sort key to a safe SQL order clause.
func OrderClause(sort string) string {
	desc := false
	if strings.HasPrefix(sort, "-") {
		desc = true
		sort = sort[1:]
	}
	col, ok := sortColumns[sort]
	if !ok {
		return "id asc"
	}
	if desc {
		return col + " desc"
	}
	return col + " asc"
}

// ClampLimit bounds a page size to [1, maxLimit], defaulting when unset.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// ClampOffset floors an offset at zero.
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
