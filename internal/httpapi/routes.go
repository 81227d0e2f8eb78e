package httpapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"motocat-backend/internal/auth"
	"motocat-backend/internal/catalog"
	"motocat-backend/internal/model"
	"motocat-backend/internal/pricing"
)

// go-playground/validator/v10: struct validator for request payloads.
var validate = validator.New()

// CatalogStore is the read side of the motorcycle catalog.
type CatalogStore interface {
	List(ctx context.Context, f catalog.Filter) ([]model.Motorcycle, int64, error)
	Get(ctx context.Context, id uint) (*model.Motorcycle, error)
	Makes(ctx context.Context) ([]string, error)
}

// CommunityStore covers ratings, comments, favorites and the garage.
type CommunityStore interface {
	Rate(ctx context.Context, userID, bikeID uint, stars int) (*model.Rating, error)
	RatingSummary(ctx context.Context, bikeID uint) (avg float64, count int64, err error)
	AddComment(ctx context.Context, userID uint, username string, bikeID uint, body string) (*model.Comment, error)
	Comments(ctx context.Context, bikeID uint, limit, offset int) ([]model.Comment, error)
	DeleteComment(ctx context.Context, userID uint, commentID string) error
	AddFavorite(ctx context.Context, userID, bikeID uint) error
	RemoveFavorite(ctx context.Context, userID, bikeID uint) error
	Favorites(ctx context.Context, userID uint) ([]model.Motorcycle, error)
	AddGarageEntry(ctx context.Context, userID uint, req model.GarageRequest) (*model.GarageEntry, error)
	RemoveGarageEntry(ctx context.Context, userID uint, entryID string) error
	Garage(ctx context.Context, userID uint) ([]model.GarageEntry, error)
}

// AlertStore covers the request-path alert operations; matching runs in the
// update consumer.
type AlertStore interface {
	Create(ctx context.Context, userID uint, req model.AlertRequest) (*model.PriceAlert, error)
	List(ctx context.Context, userID uint) ([]model.PriceAlert, error)
	Delete(ctx context.Context, userID uint, alertID string) error
}

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	ByUsername(ctx context.Context, username string) (*model.User, error)
}

// Quoter is the vendor pricing engine.
type Quoter interface {
	Quote(b pricing.Bike, regionCode string) []pricing.Quote
	Regions() map[string]pricing.Region
}

// ListCache caches serialized catalog listings; a nil cache disables caching.
type ListCache interface {
	Get(ctx context.Context, queryKey string) string
	Set(ctx context.Context, queryKey, payload string)
}

// Server holds every dependency the HTTP handlers need.
type Server struct {
	Catalog   CatalogStore
	Community CommunityStore
	Alerts    AlertStore
	Users     UserStore
	Engine    Quoter
	Auth      *auth.Manager
	Cache     ListCache
}

// RegisterRoutes wires all API routes onto the router.
// gorilla/mux: method-based routing and URL pattern matching.
func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/register", s.registerHandler).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.loginHandler).Methods(http.MethodPost)

	api.HandleFunc("/motorcycles", s.listBikesHandler).Methods(http.MethodGet)
	api.HandleFunc("/motorcycles/makes", s.makesHandler).Methods(http.MethodGet)
	api.HandleFunc("/motorcycles/{id:[0-9]+}", s.getBikeHandler).Methods(http.MethodGet)
	api.HandleFunc("/motorcycles/{id:[0-9]+}/quotes", s.quotesHandler).Methods(http.MethodGet)
	api.HandleFunc("/motorcycles/{id:[0-9]+}/comments", s.listCommentsHandler).Methods(http.MethodGet)
	api.HandleFunc("/motorcycles/{id:[0-9]+}/ratings/summary", s.ratingSummaryHandler).Methods(http.MethodGet)
	api.HandleFunc("/regions", s.regionsHandler).Methods(http.MethodGet)

	// Authenticated routes.
	me := api.NewRoute().Subrouter()
	me.Use(s.Auth.Middleware)
	me.HandleFunc("/motorcycles/{id:[0-9]+}/ratings", s.rateHandler).Methods(http.MethodPost)
	me.HandleFunc("/motorcycles/{id:[0-9]+}/comments", s.addCommentHandler).Methods(http.MethodPost)
	me.HandleFunc("/comments/{id}", s.deleteCommentHandler).Methods(http.MethodDelete)
	me.HandleFunc("/me/favorites", s.listFavoritesHandler).Methods(http.MethodGet)
	me.HandleFunc("/me/favorites", s.addFavoriteHandler).Methods(http.MethodPost)
	me.HandleFunc("/me/favorites/{bikeID:[0-9]+}", s.removeFavoriteHandler).Methods(http.MethodDelete)
	me.HandleFunc("/me/garage", s.listGarageHandler).Methods(http.MethodGet)
	me.HandleFunc("/me/garage", s.addGarageHandler).Methods(http.MethodPost)
	me.HandleFunc("/me/garage/{id}", s.removeGarageHandler).Methods(http.MethodDelete)
	me.HandleFunc("/me/alerts", s.listAlertsHandler).Methods(http.MethodGet)
	me.HandleFunc("/me/alerts", s.createAlertHandler).Methods(http.MethodPost)
	me.HandleFunc("/me/alerts/{id}", s.deleteAlertHandler).Methods(http.MethodDelete)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]string{"status": "ok"})
}
