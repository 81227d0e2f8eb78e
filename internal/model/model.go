package model

import "time"

// BikeStatus is the catalog availability status of a motorcycle.
type BikeStatus string

const (
	StatusAvailable     BikeStatus = "Available"
	StatusDiscontinued  BikeStatus = "Discontinued"
	StatusCollectorItem BikeStatus = "CollectorItem"
)

// Motorcycle is a catalog entry. BasePriceUSD is the manufacturer reference
// price; regional vendor prices are derived from it at request time and never
// stored.
type Motorcycle struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Make         string     `json:"make" gorm:"index;size:64"`
	Model        string     `json:"model" gorm:"size:128"`
	Category     string     `json:"category" gorm:"index;size:32"` // sport, cruiser, adventure, ...
	Displacement int        `json:"displacement_cc"`
	Year         int        `json:"year" gorm:"index"`
	BasePriceUSD float64    `json:"base_price_usd"`
	Status       BikeStatus `json:"status" gorm:"size:32"`
	ImageURL     string     `json:"image_url,omitempty" gorm:"size:512"`
	TopSpeedKPH  int        `json:"top_speed_kph,omitempty"`
	PowerHP      float64    `json:"power_hp,omitempty"`
	RatingAvg    float64    `json:"rating_avg"`
	RatingCount  int        `json:"rating_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// User is a registered community member. PasswordHash is never serialized.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:128"`
	PasswordHash string    `json:"-" gorm:"size:128"`
	CreatedAt    time.Time `json:"created_at"`
}

// Rating is a 1-5 star rating by one user for one motorcycle. One row per
// user x bike; re-rating overwrites.
type Rating struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	MotorcycleID uint      `json:"motorcycle_id" gorm:"uniqueIndex:idx_rating_user_bike"`
	UserID       uint      `json:"user_id" gorm:"uniqueIndex:idx_rating_user_bike"`
	Stars        int       `json:"stars"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Comment struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	MotorcycleID uint      `json:"motorcycle_id" gorm:"index"`
	UserID       uint      `json:"user_id" gorm:"index"`
	Username     string    `json:"username" gorm:"size:64"`
	Body         string    `json:"body" gorm:"size:2000"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Favorite marks a motorcycle as favorited by a user.
type Favorite struct {
	UserID       uint      `json:"user_id" gorm:"primaryKey"`
	MotorcycleID uint      `json:"motorcycle_id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
}

// GarageEntry is a motorcycle a user owns (the "virtual garage").
type GarageEntry struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	UserID       uint      `json:"user_id" gorm:"index"`
	MotorcycleID uint      `json:"motorcycle_id"`
	Nickname     string    `json:"nickname,omitempty" gorm:"size:64"`
	PurchaseYear int       `json:"purchase_year,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PriceAlert fires when a bike's base price drops to or below TargetPriceUSD.
// Region is echoed into the notification so the alert consumer can present a
// local-currency figure; matching itself is done on the USD reference price.
type PriceAlert struct {
	ID             string     `json:"id" gorm:"primaryKey;size:36"`
	UserID         uint       `json:"user_id" gorm:"index"`
	MotorcycleID   uint       `json:"motorcycle_id" gorm:"index"`
	Region         string     `json:"region" gorm:"size:8"`
	TargetPriceUSD float64    `json:"target_price_usd"`
	Active         bool       `json:"active" gorm:"index"`
	TriggeredAt    *time.Time `json:"triggered_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
