package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

type stubStoreService struct {
	createFn func(ctx context.Context, actor domain.Principal, in ports.CreateStoreInput) (*domain.Store, error)
	listFn   func(ctx context.Context, f ports.StoreFilter) ([]domain.Store, error)
	updateFn func(ctx context.Context, actor domain.Principal, id int64, p domain.StorePatch) (*domain.Store, error)
}

func (s *stubStoreService) Create(ctx context.Context, actor domain.Principal, in ports.CreateStoreInput) (*domain.Store, error) {
	return s.createFn(ctx, actor, in)
}
func (s *stubStoreService) Get(ctx context.Context, id int64) (*domain.Store, error) {
	return nil, domain.ErrStoreNotFound
}
func (s *stubStoreService) List(ctx context.Context, f ports.StoreFilter) ([]domain.Store, error) {
	return s.listFn(ctx, f)
}
func (s *stubStoreService) Update(ctx context.Context, actor domain.Principal, id int64, p domain.StorePatch) (*domain.Store, error) {
	return s.updateFn(ctx, actor, id, p)
}
func (s *stubStoreService) Deactivate(ctx context.Context, actor domain.Principal, id int64) error {
	return nil
}

var aliceClaims = domain.Claims{UserID: 1, Username: "alice", Role: domain.RoleStoreOwner}

func TestStoreHandler_Create(t *testing.T) {
	stub := &stubStoreService{
		createFn: func(ctx context.Context, actor domain.Principal, in ports.CreateStoreInput) (*domain.Store, error) {
			if actor.UserID != 1 || in.Name != "Corner" || in.Category != domain.StoreCategoryMarketplace {
				t.Fatalf("unexpected call: %+v %+v", actor, in)
			}
			return &domain.Store{ID: 9, Name: in.Name, OwnerID: actor.UserID, Category: in.Category, IsActive: true}, nil
		},
	}
	h := NewStoreHandler(stub)

	c, rec := jsonContext(newTestEcho(), http.MethodPost, "/stores", `{"name":"Corner","category":"marketplace"}`)
	SetClaims(c, aliceClaims)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Status string       `json:"status"`
		Data   domain.Store `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if rec.Code != http.StatusOK || resp.Status != "success" || resp.Data.ID != 9 {
		t.Fatalf("unexpected response %d %+v", rec.Code, resp)
	}
}

func TestStoreHandler_Create_RequiresClaims(t *testing.T) {
	h := NewStoreHandler(&stubStoreService{})
	c, _ := jsonContext(newTestEcho(), http.MethodPost, "/stores", `{"name":"Corner","category":"marketplace"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrAuthMissing) {
		t.Fatalf("expected ErrAuthMissing, got %v", err)
	}
}

func TestStoreHandler_Create_InvalidCategory(t *testing.T) {
	h := NewStoreHandler(&stubStoreService{})
	c, _ := jsonContext(newTestEcho(), http.MethodPost, "/stores", `{"name":"Corner","category":"casino"}`)
	SetClaims(c, aliceClaims)
	if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestStoreHandler_ListByOwner(t *testing.T) {
	stub := &stubStoreService{
		listFn: func(ctx context.Context, f ports.StoreFilter) ([]domain.Store, error) {
			if f.OwnerID != 5 || f.Category != "jobs" {
				t.Fatalf("unexpected filter %+v", f)
			}
			return nil, nil
		},
	}
	h := NewStoreHandler(stub)

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/stores/owner/5?category=jobs", nil), rec)
	c.SetParamNames("ownerId")
	c.SetParamValues("5")

	if err := h.ListByOwner(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count == nil || *resp.Count != 0 {
		t.Fatalf("expected count 0, got %+v", resp)
	}
	if items, ok := resp.Data.([]any); !ok || len(items) != 0 {
		t.Fatalf("expected empty array, got %#v", resp.Data)
	}
}

func TestStoreHandler_Update(t *testing.T) {
	var got domain.StorePatch
	stub := &stubStoreService{
		updateFn: func(ctx context.Context, actor domain.Principal, id int64, p domain.StorePatch) (*domain.Store, error) {
			if id != 9 {
				t.Fatalf("unexpected id %d", id)
			}
			got = p
			return &domain.Store{ID: id}, nil
		},
	}
	h := NewStoreHandler(stub)

	newCtx := func(body, id string) echo.Context {
		c, _ := jsonContext(newTestEcho(), http.MethodPut, "/stores/"+id, body)
		c.SetParamNames("id")
		c.SetParamValues(id)
		SetClaims(c, aliceClaims)
		return c
	}

	if err := h.Update(newCtx(`{"address":"Main St"}`, "9")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Address == nil || *got.Address != "Main St" || got.Name != nil {
		t.Fatalf("unexpected patch %+v", got)
	}

	if err := h.Update(newCtx(`{}`, "9")); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty body, got %v", err)
	}
	if err := h.Update(newCtx(`{"ownerId":2}`, "9")); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for ownerId change, got %v", err)
	}
	if err := h.Update(newCtx(`{"name":"x"}`, "-1")); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad id, got %v", err)
	}
}
