package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fahimahmed420/CampusPilot-server/internal/domain/user"
	"github.com/fahimahmed420/CampusPilot-server/internal/http/handlers"
	"github.com/fahimahmed420/CampusPilot-server/internal/repo/mongodb"
)

// Make sure Gin does not spam the console during the test

func init() {
	gin.SetMode(gin.TestMode)
}

// Fake repository implementation of the handlers.UsersStore interface

type fakeUsersRepo struct {
	createIfAbsentFn func(ctx context.Context, u user.User) (user.User, bool, error)
	listFn           func(ctx context.Context) ([]user.User, error)
	getByIDFn        func(ctx context.Context, id string) (user.User, error)
	getByUIDFn       func(ctx context.Context, uid string) (user.User, error)
}

func (f *fakeUsersRepo) CreateIfAbsent(ctx context.Context, u user.User) (user.User, bool, error) {
	if f.createIfAbsentFn != nil {
		return f.createIfAbsentFn(ctx, u)
	}
	return user.User{}, false, nil
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]user.User, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return user.User{}, nil
}

func (f *fakeUsersRepo) GetByUID(ctx context.Context, uid string) (user.User, error) {
	if f.getByUIDFn != nil {
		return f.getByUIDFn(ctx, uid)
	}
	return user.User{}, nil
}

// small helper which returns a gin engine to mount one handler per test

func setupRouter(method, path string, h gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	r.Handle(method, path, h)

	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestCreateUserIdempotent(t *testing.T) {
	existingID := bson.NewObjectID()

	calls := 0

	repo := &fakeUsersRepo{
		createIfAbsentFn: func(_ context.Context, u user.User) (user.User, bool, error) {
			calls++

			stored := user.User{ID: existingID, UID: u.UID, Extra: u.Extra}

			// first call inserts, repeats return the same record
			return stored, calls == 1, nil
		},
	}

	h := handlers.NewUsersHandler(repo)
	r := setupRouter(http.MethodPost, "/api/users", h.CreateUser)

	type createResp struct {
		Message string         `json:"message"`
		User    map[string]any `json:"user"`
	}

	var first, second createResp

	w := doJSON(r, http.MethodPost, "/api/users", `{"uid":"u1","name":"Aisha"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if err := json.Unmarshal(w.Body.Bytes(), &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if first.Message != "User created" {
		t.Errorf("expected creation message, got %q", first.Message)
	}

	w = doJSON(r, http.MethodPost, "/api/users", `{"uid":"u1","name":"Aisha"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeat, got %d", w.Code)
	}

	if err := json.Unmarshal(w.Body.Bytes(), &second); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if second.Message != "User already exists" {
		t.Errorf("expected pre-existence message, got %q", second.Message)
	}

	if first.User["_id"] != second.User["_id"] {
		t.Errorf("expected same generated id on repeat, got %v vs %v", first.User["_id"], second.User["_id"])
	}

	if first.User["_id"] != existingID.Hex() {
		t.Errorf("expected id %s, got %v", existingID.Hex(), first.User["_id"])
	}
}

func TestCreateUserMissingUID(t *testing.T) {
	repo := &fakeUsersRepo{
		createIfAbsentFn: func(_ context.Context, u user.User) (user.User, bool, error) {
			if u.UID == "" {
				return user.User{}, false, mongodb.ErrMissingOwner
			}
			return u, true, nil
		},
	}

	h := handlers.NewUsersHandler(repo)
	r := setupRouter(http.MethodPost, "/api/users", h.CreateUser)

	w := doJSON(r, http.MethodPost, "/api/users", `{"name":"no uid"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetUserByID(t *testing.T) {
	knownID := bson.NewObjectID()

	repo := &fakeUsersRepo{
		getByIDFn: func(_ context.Context, id string) (user.User, error) {
			if id == "bogus" {
				return user.User{}, mongodb.ErrInvalidID
			}
			if id != knownID.Hex() {
				return user.User{}, mongodb.ErrNotFound
			}
			return user.User{ID: knownID, UID: "u1"}, nil
		},
	}

	h := handlers.NewUsersHandler(repo)
	r := setupRouter(http.MethodGet, "/api/users/:id", h.GetUserByID)

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"found", knownID.Hex(), http.StatusOK},
		{"malformed id is a client error", "bogus", http.StatusBadRequest},
		{"missing record", bson.NewObjectID().Hex(), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodGet, "/api/users/"+tt.id, "")

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestListUsersFlattensExtras(t *testing.T) {
	repo := &fakeUsersRepo{
		listFn: func(_ context.Context) ([]user.User, error) {
			return []user.User{
				{ID: bson.NewObjectID(), UID: "u1", Extra: map[string]any{"name": "Aisha", "semester": float64(4)}},
			}, nil
		},
	}

	h := handlers.NewUsersHandler(repo)
	r := setupRouter(http.MethodGet, "/api/users", h.ListUsers)

	w := doJSON(r, http.MethodGet, "/api/users", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var out []map[string]any

	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("expected one user, got %d", len(out))
	}

	if out[0]["name"] != "Aisha" || out[0]["uid"] != "u1" {
		t.Errorf("extras not flattened next to uid: %v", out[0])
	}
}
