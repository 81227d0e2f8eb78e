package model

// Request payloads for the HTTP API. Validation rules live in the struct tags
// and are enforced with go-playground/validator before any handler logic runs.

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RateRequest struct {
	Stars int `json:"stars" validate:"required,min=1,max=5"`
}

type CommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

type FavoriteRequest struct {
	MotorcycleID uint `json:"motorcycle_id" validate:"required"`
}

type GarageRequest struct {
	MotorcycleID uint   `json:"motorcycle_id" validate:"required"`
	Nickname     string `json:"nickname" validate:"omitempty,max=64"`
	PurchaseYear int    `json:"purchase_year" validate:"omitempty,min=1900,max=2100"`
}

type AlertRequest struct {
	MotorcycleID   uint    `json:"motorcycle_id" validate:"required"`
	Region         string  `json:"region" validate:"required,len=2,uppercase"`
	TargetPriceUSD float64 `json:"target_price_usd" validate:"required,gt=0"`
}
