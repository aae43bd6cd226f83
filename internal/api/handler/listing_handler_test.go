package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/souqly/marketplace-api/internal/core/domain"
)

// stubListingService keeps listings in memory for handler tests.
type stubListingService[T domain.Listing] struct {
	items   map[int64]*T
	created []*T
	filters []domain.ListingFilter
}

func newStubListingService[T domain.Listing]() *stubListingService[T] {
	return &stubListingService[T]{items: map[int64]*T{}}
}

func (s *stubListingService[T]) Create(_ context.Context, _ domain.Principal, item *T) (*T, error) {
	s.created = append(s.created, item)
	return item, nil
}
func (s *stubListingService[T]) Get(_ context.Context, id int64) (*T, error) {
	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrNotFound
}
func (s *stubListingService[T]) List(_ context.Context, f domain.ListingFilter) ([]T, error) {
	s.filters = append(s.filters, f)
	return nil, nil
}
func (s *stubListingService[T]) Update(_ context.Context, _ domain.Principal, id int64, apply func(*T)) (*T, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	apply(item)
	return item, nil
}
func (s *stubListingService[T]) Deactivate(_ context.Context, _ domain.Principal, id int64) error {
	delete(s.items, id)
	return nil
}

func TestListingHandler_CreateProduct(t *testing.T) {
	svc := newStubListingService[domain.Product]()
	h := NewProductHandler(svc)

	c, rec := jsonContext(newTestEcho(), http.MethodPost, "/products", `{"name":"Mug","price":0,"storeId":3,"category":"kitchen"}`)
	SetClaims(c, aliceClaims)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || len(svc.created) != 1 {
		t.Fatalf("expected product to be created, got %d", rec.Code)
	}
	p := svc.created[0]
	if p.Name != "Mug" || p.Price != 0 || p.StoreID != 3 || p.Category != "kitchen" {
		t.Fatalf("unexpected product %+v", p)
	}
}

func TestListingHandler_CreateValidation(t *testing.T) {
	svc := newStubListingService[domain.Job]()
	h := NewJobHandler(svc)

	bodies := map[string]string{
		"missing store":  `{"title":"Barista","description":"Morning shift"}`,
		"negative store": `{"title":"Barista","description":"Morning shift","storeId":-1}`,
		"unknown field":  `{"title":"Barista","description":"Morning shift","storeId":1,"remote":true}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c, _ := jsonContext(newTestEcho(), http.MethodPost, "/jobs", body)
			SetClaims(c, aliceClaims)
			if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
	if len(svc.created) != 0 {
		t.Fatalf("invalid requests reached the service")
	}
}

func TestListingHandler_Update(t *testing.T) {
	svc := newStubListingService[domain.Product]()
	svc.items[5] = &domain.Product{ID: 5, Name: "Mug", Price: 9.5, StoreID: 3, Category: "kitchen"}
	h := NewProductHandler(svc)

	c, rec := jsonContext(newTestEcho(), http.MethodPut, "/products/5", `{"price":12}`)
	c.SetParamNames("id")
	c.SetParamValues("5")
	SetClaims(c, aliceClaims)
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Data domain.Product `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data.Price != 12 || resp.Data.Name != "Mug" || resp.Data.StoreID != 3 {
		t.Fatalf("unexpected product %+v", resp.Data)
	}
}

func TestListingHandler_CategoryFilter(t *testing.T) {
	products := newStubListingService[domain.Product]()
	announcements := newStubListingService[domain.Announcement]()
	e := newTestEcho()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/products/store/3?category=kitchen", nil), httptest.NewRecorder())
	c.SetParamNames("storeId")
	c.SetParamValues("3")
	if err := NewProductHandler(products).ListByStore(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if f := products.filters[0]; f.StoreID != 3 || f.Category != "kitchen" {
		t.Fatalf("unexpected product filter %+v", f)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/announcements?category=kitchen", nil), httptest.NewRecorder())
	if err := NewAnnouncementHandler(announcements).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if f := announcements.filters[0]; f.Category != "" {
		t.Fatalf("announcements have no category, got filter %+v", f)
	}
}

func TestListingHandler_GetNotFound(t *testing.T) {
	h := NewServiceHandler(newStubListingService[domain.Service]())
	c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/services/8", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("8")
	if err := h.Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
