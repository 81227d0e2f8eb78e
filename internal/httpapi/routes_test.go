package httpapi

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"motocat-backend/internal/auth"
	"motocat-backend/internal/catalog"
	"motocat-backend/internal/model"
	"motocat-backend/internal/pricing"
	"motocat-backend/internal/users"
)

type fakeCatalog struct {
	bikes   map[uint]*model.Motorcycle
	lastF   catalog.Filter
	listErr error
}

func (f *fakeCatalog) List(ctx context.Context, flt catalog.Filter) ([]model.Motorcycle, int64, error) {
	f.lastF = flt
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	out := make([]model.Motorcycle, 0, len(f.bikes))
	for _, b := range f.bikes {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCatalog) Get(ctx context.Context, id uint) (*model.Motorcycle, error) {
	b, ok := f.bikes[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return b, nil
}

func (f *fakeCatalog) Makes(ctx context.Context) ([]string, error) {
	return []string{"Honda", "Yamaha"}, nil
}

type fakeUsers struct {
	byName map[string]*model.User
	nextID uint
}

func (f *fakeUsers) Create(ctx context.Context, u *model.User) error {
	if _, ok := f.byName[u.Username]; ok {
		return users.ErrTaken
	}
	f.nextID++
	u.ID = f.nextID
	f.byName[u.Username] = u
	return nil
}

func (f *fakeUsers) ByUsername(ctx context.Context, username string) (*model.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return nil, users.ErrNotFound
	}
	return u, nil
}

type fakeCommunity struct {
	CommunityStore // panic on anything not overridden
	rated          []int
	gotLimit       int
	gotOffset      int
}

func (f *fakeCommunity) Rate(ctx context.Context, userID, bikeID uint, stars int) (*model.Rating, error) {
	f.rated = append(f.rated, stars)
	return &model.Rating{ID: "r1", MotorcycleID: bikeID, UserID: userID, Stars: stars}, nil
}

func (f *fakeCommunity) Comments(ctx context.Context, bikeID uint, limit, offset int) ([]model.Comment, error) {
	f.gotLimit = limit
	f.gotOffset = offset
	return []model.Comment{{ID: "c1", MotorcycleID: bikeID, Body: "nice bike"}}, nil
}

func newTestServer() (*Server, *fakeCatalog, *fakeUsers, *fakeCommunity) {
	cat := &fakeCatalog{bikes: map[uint]*model.Motorcycle{
		1: {ID: 1, Make: "Honda", Model: "CB650R", Displacement: 649, Year: 2021, BasePriceUSD: 9199, Status: model.StatusAvailable},
		2: {ID: 2, Make: "Honda", Model: "CBR600RR", Displacement: 599, Year: 2007, BasePriceUSD: 6500, Status: model.StatusDiscontinued},
	}}
	usr := &fakeUsers{byName: map[string]*model.User{}}
	com := &fakeCommunity{}
	srv := &Server{
		Catalog:   cat,
		Community: com,
		Users:     usr,
		Engine:    pricing.New(pricing.DefaultConfig(), rand.New(rand.NewSource(1))),
		Auth:      auth.NewManager("test-secret", time.Hour),
	}
	return srv, cat, usr, com
}

func newTestRouter(srv *Server) *mux.Router {
	r := mux.NewRouter()
	srv.RegisterRoutes(r)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func TestListBikes_ParsesFilters(t *testing.T) {
	t.Parallel()
	srv, cat, _, _ := newTestServer()
	r := newTestRouter(srv)

	rec, env := doJSON(t, r, http.MethodGet, "/api/motorcycles?make=Honda&min_cc=300&max_cc=800&sort=-price&limit=5&offset=10", nil, "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	f := cat.lastF
	if f.Make != "Honda" || f.MinDisplacement != 300 || f.MaxDisplacement != 800 || f.Sort != "-price" || f.Limit != 5 || f.Offset != 10 {
		t.Errorf("filter parsed wrong: %+v", f)
	}
}

func TestGetBike_NotFound(t *testing.T) {
	t.Parallel()
	srv, _, _, _ := newTestServer()
	r := newTestRouter(srv)

	rec, env := doJSON(t, r, http.MethodGet, "/api/motorcycles/99", nil, "")
	if rec.Code != http.StatusNotFound || env.Success {
		t.Errorf("status %d body %s", rec.Code, rec.Body.String())
	}
}

func TestQuotes_EligibleRegion(t *testing.T) {
	t.Parallel()
	srv, _, _, _ := newTestServer()
	r := newTestRouter(srv)

	rec, env := doJSON(t, r, http.MethodGet, "/api/motorcycles/1/quotes?region=IN", nil, "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Region string          `json:"region"`
		Quotes []pricing.Quote `json:"quotes"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.Region != "IN" {
		t.Errorf("region %q, want IN", data.Region)
	}
	if want := len(pricing.DefaultConfig().Vendors["IN"]); len(data.Quotes) != want {
		t.Errorf("got %d quotes, want %d", len(data.Quotes), want)
	}
}

func TestQuotes_DiscontinuedSentinel(t *testing.T) {
	t.Parallel()
	srv, _, _, _ := newTestServer()
	r := newTestRouter(srv)

	_, env := doJSON(t, r, http.MethodGet, "/api/motorcycles/2/quotes?region=US", nil, "")
	var data struct {
		Quotes []pricing.Quote `json:"quotes"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Quotes) != 1 || !data.Quotes[0].Discontinued {
		t.Errorf("expected a single discontinued sentinel, got %+v", data.Quotes)
	}
}

func TestRegisterLoginFlow(t *testing.T) {
	t.Parallel()
	srv, _, _, _ := newTestServer()
	r := newTestRouter(srv)

	rec, env := doJSON(t, r, http.MethodPost, "/api/auth/register", model.RegisterRequest{
		Username: "rider1", Email: "rider1@example.com", Password: "supersecret",
	}, "")
	if rec.Code != http.StatusCreated || !env.Success {
		t.Fatalf("register: status %d body %s", rec.Code, rec.Body.String())
	}

	// Duplicate username conflicts.
	rec, _ = doJSON(t, r, http.MethodPost, "/api/auth/register", model.RegisterRequest{
		Username: "rider1", Email: "other@example.com", Password: "supersecret",
	}, "")
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate register: status %d, want 409", rec.Code)
	}

	rec, env = doJSON(t, r, http.MethodPost, "/api/auth/login", model.LoginRequest{
		Username: "rider1", Password: "supersecret",
	}, "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("login: status %d body %s", rec.Code, rec.Body.String())
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.Token == "" {
		t.Fatal("login returned no token")
	}

	rec, _ = doJSON(t, r, http.MethodPost, "/api/auth/login", model.LoginRequest{
		Username: "rider1", Password: "wrong-password",
	}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad password: status %d, want 401", rec.Code)
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	t.Parallel()
	srv, _, _, _ := newTestServer()
	r := newTestRouter(srv)

	rec, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", model.RegisterRequest{
		Username: "x", Email: "not-an-email", Password: "short",
	}, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestRate_RequiresAuth(t *testing.T) {
	t.Parallel()
	srv, _, _, com := newTestServer()
	r := newTestRouter(srv)

	rec, _ := doJSON(t, r, http.MethodPost, "/api/motorcycles/1/ratings", model.RateRequest{Stars: 5}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated rating: status %d, want 401", rec.Code)
	}

	token, err := srv.Auth.IssueToken(9, "rider9")
	if err != nil {
		t.Fatal(err)
	}
	rec, _ = doJSON(t, r, http.MethodPost, "/api/motorcycles/1/ratings", model.RateRequest{Stars: 5}, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("authenticated rating: status %d body %s", rec.Code, rec.Body.String())
	}
	if len(com.rated) != 1 || com.rated[0] != 5 {
		t.Errorf("rating not stored: %+v", com.rated)
	}

	rec, _ = doJSON(t, r, http.MethodPost, "/api/motorcycles/1/ratings", model.RateRequest{Stars: 9}, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("out-of-range stars: status %d, want 400", rec.Code)
	}
}

func TestListBikes_GzipWhenAccepted(t *testing.T) {
	t.Parallel()
	srv, _, _, _ := newTestServer()
	r := newTestRouter(srv)

	req := httptest.NewRequest(http.MethodGet, "/api/motorcycles", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	if enc := rec.Header().Get("Content-Encoding"); enc != "gzip" {
		t.Fatalf("Content-Encoding %q, want gzip", enc)
	}
	gr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("body is not gzip: %v", err)
	}
	var env envelope
	if err := json.NewDecoder(gr).Decode(&env); err != nil {
		t.Fatalf("decompressed body is not JSON: %v", err)
	}
	if !env.Success {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestListBikes_PlainWithoutAcceptEncoding(t *testing.T) {
	t.Parallel()
	srv, _, _, _ := newTestServer()
	r := newTestRouter(srv)

	rec, env := doJSON(t, r, http.MethodGet, "/api/motorcycles", nil, "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	if enc := rec.Header().Get("Content-Encoding"); enc != "" {
		t.Errorf("Content-Encoding %q on a plain request, want none", enc)
	}
}

func TestListComments_GzipWhenAccepted(t *testing.T) {
	t.Parallel()
	srv, _, _, _ := newTestServer()
	r := newTestRouter(srv)

	req := httptest.NewRequest(http.MethodGet, "/api/motorcycles/1/comments", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if enc := rec.Header().Get("Content-Encoding"); enc != "gzip" {
		t.Fatalf("Content-Encoding %q, want gzip", enc)
	}
	gr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("body is not gzip: %v", err)
	}
	var env envelope
	if err := json.NewDecoder(gr).Decode(&env); err != nil {
		t.Fatalf("decompressed body is not JSON: %v", err)
	}
}

func TestListComments_ClampsPaging(t *testing.T) {
	t.Parallel()
	srv, _, _, com := newTestServer()
	r := newTestRouter(srv)

	rec, _ := doJSON(t, r, http.MethodGet, "/api/motorcycles/1/comments?limit=1000000&offset=-3", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	if com.gotLimit != 100 {
		t.Errorf("store saw limit %d, want the 100 cap", com.gotLimit)
	}
	if com.gotOffset != 0 {
		t.Errorf("store saw offset %d, want 0", com.gotOffset)
	}

	rec, _ = doJSON(t, r, http.MethodGet, "/api/motorcycles/1/comments", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	if com.gotLimit <= 0 {
		t.Errorf("store saw limit %d for an unpaged request, want a positive default", com.gotLimit)
	}
}

func TestRegions(t *testing.T) {
	t.Parallel()
	srv, _, _, _ := newTestServer()
	r := newTestRouter(srv)

	rec, env := doJSON(t, r, http.MethodGet, "/api/regions", nil, "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("status %d body %s", rec.Code, rec.Body.String())
	}
	var regions []map[string]string
	if err := json.Unmarshal(env.Data, &regions); err != nil {
		t.Fatal(err)
	}
	if want := len(pricing.DefaultConfig().Regions); len(regions) != want {
		t.Errorf("got %d regions, want %d", len(regions), want)
	}
}
