package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

type listingCreate[T domain.Listing] interface {
	listing() *T
}

type listingUpdate[T domain.Listing] interface {
	empty() bool
	apply(*T)
}

// ListingHandler serves one listing resource. C and U are the create and
// update request schemas.
type ListingHandler[T domain.Listing, C listingCreate[T], U listingUpdate[T]] struct {
	resource    string // singular, used in metrics
	plural      string
	title       string
	svc         ports.ListingService[T]
	hasCategory bool
}

func newListingHandler[T domain.Listing, C listingCreate[T], U listingUpdate[T]](resource, plural, title string, svc ports.ListingService[T], hasCategory bool) *ListingHandler[T, C, U] {
	return &ListingHandler[T, C, U]{resource: resource, plural: plural, title: title, svc: svc, hasCategory: hasCategory}
}

func NewProductHandler(svc ports.ListingService[domain.Product]) *ListingHandler[domain.Product, productRequest, productUpdateRequest] {
	return newListingHandler[domain.Product, productRequest, productUpdateRequest]("product", "Products", "Product", svc, true)
}

func NewServiceHandler(svc ports.ListingService[domain.Service]) *ListingHandler[domain.Service, serviceRequest, serviceUpdateRequest] {
	return newListingHandler[domain.Service, serviceRequest, serviceUpdateRequest]("service", "Services", "Service", svc, true)
}

func NewJobHandler(svc ports.ListingService[domain.Job]) *ListingHandler[domain.Job, jobRequest, jobUpdateRequest] {
	return newListingHandler[domain.Job, jobRequest, jobUpdateRequest]("job", "Jobs", "Job", svc, false)
}

func NewAnnouncementHandler(svc ports.ListingService[domain.Announcement]) *ListingHandler[domain.Announcement, announcementRequest, announcementUpdateRequest] {
	return newListingHandler[domain.Announcement, announcementRequest, announcementUpdateRequest]("announcement", "Announcements", "Announcement", svc, false)
}

func (h *ListingHandler[T, C, U]) filter(c echo.Context) domain.ListingFilter {
	var f domain.ListingFilter
	if h.hasCategory {
		f.Category = c.QueryParam("category")
	}
	return f
}

// List handles GET /<resources>.
func (h *ListingHandler[T, C, U]) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context(), h.filter(c))
	if err != nil {
		return err
	}
	return okList(c, h.plural+" retrieved", items)
}

// ListByStore handles GET /<resources>/store/:storeId.
func (h *ListingHandler[T, C, U]) ListByStore(c echo.Context) error {
	storeID, err := pathID(c, "storeId")
	if err != nil {
		return err
	}
	f := h.filter(c)
	f.StoreID = storeID
	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return okList(c, h.plural+" retrieved", items)
}

// Get handles GET /<resources>/:id.
func (h *ListingHandler[T, C, U]) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, h.title+" retrieved", item)
}

// Create handles POST /<resources>. The caller must own the target store.
func (h *ListingHandler[T, C, U]) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req C
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item, err := h.svc.Create(c.Request().Context(), p, req.listing())
	observeMutation(h.resource, domain.ActionCreate, err)
	if err != nil {
		return err
	}
	return ok(c, h.title+" created", item)
}

// Update handles PUT /<resources>/:id.
func (h *ListingHandler[T, C, U]) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req U
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.empty() {
		return domain.Invalid("no valid fields to update")
	}

	item, err := h.svc.Update(c.Request().Context(), p, id, func(item *T) { req.apply(item) })
	observeMutation(h.resource, domain.ActionUpdate, err)
	if err != nil {
		return err
	}
	return ok(c, h.title+" updated", item)
}

// Deactivate handles DELETE /<resources>/:id.
func (h *ListingHandler[T, C, U]) Deactivate(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	err = h.svc.Deactivate(c.Request().Context(), p, id)
	observeMutation(h.resource, domain.ActionDeactivate, err)
	if err != nil {
		return err
	}
	return ok(c, h.title+" deactivated", nil)
}
