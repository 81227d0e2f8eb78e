package httpapi

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"motocat-backend/internal/alerts"
	"motocat-backend/internal/catalog"
	"motocat-backend/internal/community"
	"motocat-backend/internal/model"
)

func (s *Server) rateHandler(w http.ResponseWriter, r *http.Request) {
	bike, ok := s.loadBike(w, r)
	if !ok {
		return
	}
	var req model.RateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "stars must be between 1 and 5")
		return
	}

	claims := mustClaims(r)
	rating, err := s.Community.Rate(r.Context(), claims.UserID, bike.ID, req.Stars)
	if err != nil {
		log.Error().Err(err).Msg("rate failed")
		writeError(w, http.StatusInternalServerError, "rating failed")
		return
	}
	writeData(w, http.StatusCreated, rating)
}

func (s *Server) ratingSummaryHandler(w http.ResponseWriter, r *http.Request) {
	bike, ok := s.loadBike(w, r)
	if !ok {
		return
	}
	avg, count, err := s.Community.RatingSummary(r.Context(), bike.ID)
	if err != nil {
		log.Error().Err(err).Msg("rating summary failed")
		writeError(w, http.StatusInternalServerError, "summary failed")
		return
	}
	writeData(w, http.StatusOK, map[string]interface{}{
		"motorcycle_id": bike.ID,
		"average":       avg,
		"count":         count,
	})
}

func (s *Server) addCommentHandler(w http.ResponseWriter, r *http.Request) {
	bike, ok := s.loadBike(w, r)
	if !ok {
		return
	}
	var req model.CommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "comment body must be 1-2000 characters")
		return
	}

	claims := mustClaims(r)
	comment, err := s.Community.AddComment(r.Context(), claims.UserID, claims.Username, bike.ID, req.Body)
	if err != nil {
		log.Error().Err(err).Msg("add comment failed")
		writeError(w, http.StatusInternalServerError, "comment failed")
		return
	}
	writeData(w, http.StatusCreated, comment)
}

func (s *Server) listCommentsHandler(w http.ResponseWriter, r *http.Request) {
	bike, ok := s.loadBike(w, r)
	if !ok {
		return
	}
	limit := catalog.ClampLimit(atoiOr(r.URL.Query().Get("limit"), 0))
	offset := catalog.ClampOffset(atoiOr(r.URL.Query().Get("offset"), 0))
	comments, err := s.Community.Comments(r.Context(), bike.ID, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("list comments failed")
		writeError(w, http.StatusInternalServerError, "listing failed")
		return
	}
	writeListData(w, r, http.StatusOK, comments)
}

func (s *Server) deleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	claims := mustClaims(r)
	err := s.Community.DeleteComment(r.Context(), claims.UserID, mux.Vars(r)["id"])
	switch {
	case stderrors.Is(err, community.ErrNotFound):
		writeError(w, http.StatusNotFound, "comment not found")
	case stderrors.Is(err, community.ErrForbidden):
		writeError(w, http.StatusForbidden, "not your comment")
	case err != nil:
		log.Error().Err(err).Msg("delete comment failed")
		writeError(w, http.StatusInternalServerError, "delete failed")
	default:
		writeData(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

func (s *Server) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	var req model.FavoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "motorcycle_id is required")
		return
	}
	claims := mustClaims(r)
	if err := s.Community.AddFavorite(r.Context(), claims.UserID, req.MotorcycleID); err != nil {
		log.Error().Err(err).Msg("add favorite failed")
		writeError(w, http.StatusInternalServerError, "favorite failed")
		return
	}
	writeData(w, http.StatusCreated, map[string]bool{"favorited": true})
}

func (s *Server) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	bikeID, err := strconv.ParseUint(mux.Vars(r)["bikeID"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid motorcycle id")
		return
	}
	claims := mustClaims(r)
	err = s.Community.RemoveFavorite(r.Context(), claims.UserID, uint(bikeID))
	if stderrors.Is(err, community.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not favorited")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("remove favorite failed")
		writeError(w, http.StatusInternalServerError, "unfavorite failed")
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"favorited": false})
}

func (s *Server) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	claims := mustClaims(r)
	bikes, err := s.Community.Favorites(r.Context(), claims.UserID)
	if err != nil {
		log.Error().Err(err).Msg("list favorites failed")
		writeError(w, http.StatusInternalServerError, "listing failed")
		return
	}
	writeListData(w, r, http.StatusOK, bikes)
}

func (s *Server) addGarageHandler(w http.ResponseWriter, r *http.Request) {
	var req model.GarageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}
	claims := mustClaims(r)
	entry, err := s.Community.AddGarageEntry(r.Context(), claims.UserID, req)
	if err != nil {
		log.Error().Err(err).Msg("add garage entry failed")
		writeError(w, http.StatusInternalServerError, "garage update failed")
		return
	}
	writeData(w, http.StatusCreated, entry)
}

func (s *Server) removeGarageHandler(w http.ResponseWriter, r *http.Request) {
	claims := mustClaims(r)
	err := s.Community.RemoveGarageEntry(r.Context(), claims.UserID, mux.Vars(r)["id"])
	if stderrors.Is(err, community.ErrNotFound) {
		writeError(w, http.StatusNotFound, "garage entry not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("remove garage entry failed")
		writeError(w, http.StatusInternalServerError, "garage update failed")
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) listGarageHandler(w http.ResponseWriter, r *http.Request) {
	claims := mustClaims(r)
	entries, err := s.Community.Garage(r.Context(), claims.UserID)
	if err != nil {
		log.Error().Err(err).Msg("list garage failed")
		writeError(w, http.StatusInternalServerError, "listing failed")
		return
	}
	writeListData(w, r, http.StatusOK, entries)
}

func (s *Server) createAlertHandler(w http.ResponseWriter, r *http.Request) {
	var req model.AlertRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}
	claims := mustClaims(r)
	alert, err := s.Alerts.Create(r.Context(), claims.UserID, req)
	if err != nil {
		log.Error().Err(err).Msg("create alert failed")
		writeError(w, http.StatusInternalServerError, "alert creation failed")
		return
	}
	writeData(w, http.StatusCreated, alert)
}

func (s *Server) listAlertsHandler(w http.ResponseWriter, r *http.Request) {
	claims := mustClaims(r)
	list, err := s.Alerts.List(r.Context(), claims.UserID)
	if err != nil {
		log.Error().Err(err).Msg("list alerts failed")
		writeError(w, http.StatusInternalServerError, "listing failed")
		return
	}
	writeListData(w, r, http.StatusOK, list)
}

func (s *Server) deleteAlertHandler(w http.ResponseWriter, r *http.Request) {
	claims := mustClaims(r)
	err := s.Alerts.Delete(r.Context(), claims.UserID, mux.Vars(r)["id"])
	if stderrors.Is(err, alerts.ErrNotFound) {
		writeError(w, http.StatusNotFound, "alert not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("delete alert failed")
		writeError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}
