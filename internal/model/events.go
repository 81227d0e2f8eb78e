package model

// PriceUpdate is the event the update bot publishes to catalog.updates and the
// catalog-updater consumer applies to MySQL. A re-delivered update simply
// overwrites the same fields.
type PriceUpdate struct {
	MotorcycleID uint    `json:"motorcycle_id"`
	BasePriceUSD float64 `json:"base_price_usd"`
	Status       string  `json:"status,omitempty"` // empty means unchanged
	Source       string  `json:"source"`           // e.g. "daily-bot"
	Timestamp    string  `json:"timestamp"`        // RFC3339
}

// AlertTriggered is published to alerts.triggered when a price update matches
// an active alert. Downstream notification delivery is out of scope.
type AlertTriggered struct {
	AlertID      string  `json:"alert_id"`
	UserID       uint    `json:"user_id"`
	MotorcycleID uint    `json:"motorcycle_id"`
	Region       string  `json:"region"`
	TargetUSD    float64 `json:"target_price_usd"`
	NewPriceUSD  float64 `json:"new_price_usd"`
	Timestamp    string  `json:"timestamp"`
}
