package httpapi

import (
	stderrors "errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"motocat-backend/internal/auth"
	"motocat-backend/internal/model"
	"motocat-backend/internal/users"
)

func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	hash, err := s.Auth.HashPassword(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("password hash failed")
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.Users.Create(r.Context(), user); err != nil {
		if stderrors.Is(err, users.ErrTaken) {
			writeError(w, http.StatusConflict, "username or email already registered")
			return
		}
		log.Error().Err(err).Msg("create user failed")
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	token, err := s.Auth.IssueToken(user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("issue token failed")
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	writeData(w, http.StatusCreated, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	user, err := s.Users.ByUsername(r.Context(), req.Username)
	if stderrors.Is(err, users.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("lookup user failed")
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if err := s.Auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.Auth.IssueToken(user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("issue token failed")
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	writeData(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// mustClaims returns the authenticated claims; the middleware guarantees they
// exist on authenticated routes.
func mustClaims(r *http.Request) *auth.Claims {
	return auth.FromContext(r.Context())
}
