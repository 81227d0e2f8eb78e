package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"motocat-backend/internal/cache"
	"motocat-backend/internal/catalog"
	"motocat-backend/internal/model"
	"motocat-backend/internal/pricing"
)

// listBikesHandler serves GET /api/motorcycles with filters and pagination.
// Responses are cached in Redis keyed by the full filter tuple; quote
// responses are never cached since their jitter is intentionally fresh per
// request.
func (s *Server) listBikesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := catalog.Filter{
		Make:            q.Get("make"),
		Category:        q.Get("category"),
		Status:          q.Get("status"),
		MinDisplacement: atoiOr(q.Get("min_cc"), 0),
		MaxDisplacement: atoiOr(q.Get("max_cc"), 0),
		MinYear:         atoiOr(q.Get("min_year"), 0),
		MaxYear:         atoiOr(q.Get("max_year"), 0),
		MaxPriceUSD:     atofOr(q.Get("max_price"), 0),
		Sort:            q.Get("sort"),
		Limit:           atoiOr(q.Get("limit"), 0),
		Offset:          atoiOr(q.Get("offset"), 0),
	}

	key := cache.QueryKey(
		f.Make, f.Category, f.Status,
		strconv.Itoa(f.MinDisplacement), strconv.Itoa(f.MaxDisplacement),
		strconv.Itoa(f.MinYear), strconv.Itoa(f.MaxYear),
		strconv.FormatFloat(f.MaxPriceUSD, 'f', -1, 64),
		f.Sort, strconv.Itoa(f.Limit), strconv.Itoa(f.Offset),
	)
	ctx := r.Context()
	if s.Cache != nil {
		if hit := s.Cache.Get(ctx, key); hit != "" {
			writeRawJSON(w, r, []byte(hit))
			return
		}
	}

	bikes, total, err := s.Catalog.List(ctx, f)
	if err != nil {
		log.Error().Err(err).Msg("list motorcycles failed")
		writeError(w, http.StatusInternalServerError, "listing failed")
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"motorcycles": bikes,
			"total":       total,
			"limit":       catalog.ClampLimit(f.Limit),
			"offset":      catalog.ClampOffset(f.Offset),
		},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encoding failed")
		return
	}
	if s.Cache != nil {
		s.Cache.Set(ctx, key, string(payload))
	}
	writeRawJSON(w, r, payload)
}

func (s *Server) getBikeHandler(w http.ResponseWriter, r *http.Request) {
	bike, ok := s.loadBike(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, bike)
}

// quotesHandler serves GET /api/motorcycles/{id}/quotes?region=XX. The region
// code is free-form; the engine degrades unknown codes to defaults.
func (s *Server) quotesHandler(w http.ResponseWriter, r *http.Request) {
	bike, ok := s.loadBike(w, r)
	if !ok {
		return
	}
	region := r.URL.Query().Get("region")
	if region == "" {
		region = "US"
	}

	quotes := s.Engine.Quote(pricing.Bike{
		Make:         bike.Make,
		Displacement: bike.Displacement,
		Year:         bike.Year,
		BasePriceUSD: bike.BasePriceUSD,
		Status:       string(bike.Status),
	}, region)

	writeData(w, http.StatusOK, map[string]interface{}{
		"motorcycle_id": bike.ID,
		"region":        region,
		"quotes":        quotes,
	})
}

func (s *Server) makesHandler(w http.ResponseWriter, r *http.Request) {
	makes, err := s.Catalog.Makes(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list makes failed")
		writeError(w, http.StatusInternalServerError, "listing failed")
		return
	}
	writeListData(w, r, http.StatusOK, makes)
}

// regionsHandler lists the supported regions so clients can render a picker.
func (s *Server) regionsHandler(w http.ResponseWriter, r *http.Request) {
	regions := s.Engine.Regions()
	out := make([]map[string]string, 0, len(regions))
	for code, region := range regions {
		out = append(out, map[string]string{
			"code":     code,
			"name":     region.Name,
			"currency": region.Currency,
		})
	}
	writeListData(w, r, http.StatusOK, out)
}

// loadBike resolves the {id} path variable to a catalog row, writing the
// error response itself on failure.
func (s *Server) loadBike(w http.ResponseWriter, r *http.Request) (*model.Motorcycle, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid motorcycle id")
		return nil, false
	}
	b, err := s.Catalog.Get(r.Context(), uint(id))
	if stderrors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "motorcycle not found")
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("get motorcycle failed")
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return nil, false
	}
	return b, true
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func atofOr(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
