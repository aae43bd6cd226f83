package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

type StoreHandler struct {
	stores ports.StoreService
}

func NewStoreHandler(stores ports.StoreService) *StoreHandler {
	return &StoreHandler{stores: stores}
}

type createStoreRequest struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Description string `json:"description"`
	Category    string `json:"category"    validate:"required,oneof=marketplace services jobs announcements"`
	Address     string `json:"address"`
	Phone       string `json:"phone"       validate:"max=32"`
	OwnerID     int64  `json:"ownerId"     validate:"omitempty,gt=0"`
}

type updateStoreRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category"    validate:"omitempty,oneof=marketplace services jobs announcements"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"       validate:"omitempty,max=32"`
}

func (r updateStoreRequest) patch() domain.StorePatch {
	return domain.StorePatch{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Address:     r.Address,
		Phone:       r.Phone,
	}
}

func (r updateStoreRequest) empty() bool {
	return r.Name == nil && r.Description == nil && r.Category == nil && r.Address == nil && r.Phone == nil
}

// Create opens a store owned by the caller.
//
// @Summary      Create store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStoreRequest  true  "Store"
// @Success      200   {object}  Envelope{data=domain.Store}
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Router       /stores [post]
func (h *StoreHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req createStoreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	store, err := h.stores.Create(c.Request().Context(), p, ports.CreateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Address:     req.Address,
		Phone:       req.Phone,
		OwnerID:     req.OwnerID,
	})
	observeMutation("store", domain.ActionCreate, err)
	if err != nil {
		return err
	}
	return ok(c, "Store created", store)
}

// List returns active stores, optionally filtered by ?category=.
//
// @Summary      List stores
// @Tags         stores
// @Produce      json
// @Param        category  query     string  false  "Store category"
// @Success      200       {object}  Envelope{data=[]domain.Store}
// @Router       /stores [get]
func (h *StoreHandler) List(c echo.Context) error {
	stores, err := h.stores.List(c.Request().Context(), ports.StoreFilter{Category: c.QueryParam("category")})
	if err != nil {
		return err
	}
	return okList(c, "Stores retrieved", stores)
}

// ListByOwner returns the active stores of one user.
//
// @Summary      List stores by owner
// @Tags         stores
// @Produce      json
// @Param        ownerId  path      int  true  "Owner user id"
// @Success      200      {object}  Envelope{data=[]domain.Store}
// @Router       /stores/owner/{ownerId} [get]
func (h *StoreHandler) ListByOwner(c echo.Context) error {
	ownerID, err := pathID(c, "ownerId")
	if err != nil {
		return err
	}
	stores, err := h.stores.List(c.Request().Context(), ports.StoreFilter{OwnerID: ownerID, Category: c.QueryParam("category")})
	if err != nil {
		return err
	}
	return okList(c, "Stores retrieved", stores)
}

// Get returns one active store.
//
// @Summary      Get store
// @Tags         stores
// @Produce      json
// @Param        id   path      int  true  "Store id"
// @Success      200  {object}  Envelope{data=domain.Store}
// @Failure      404  {object}  Envelope
// @Router       /stores/{id} [get]
func (h *StoreHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	store, err := h.stores.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return ok(c, "Store retrieved", store)
}

// Update changes a store. Owner or admin only.
//
// @Summary      Update store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Store id"
// @Param        body  body      updateStoreRequest  true  "Fields to change"
// @Success      200   {object}  Envelope{data=domain.Store}
// @Failure      400   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /stores/{id} [put]
func (h *StoreHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateStoreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.empty() {
		return domain.Invalid("no valid fields to update")
	}

	store, err := h.stores.Update(c.Request().Context(), p, id, req.patch())
	observeMutation("store", domain.ActionUpdate, err)
	if err != nil {
		return err
	}
	return ok(c, "Store updated", store)
}

// Deactivate hides a store. Owner or admin only.
//
// @Summary      Deactivate store
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Store id"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /stores/{id} [delete]
func (h *StoreHandler) Deactivate(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	err = h.stores.Deactivate(c.Request().Context(), p, id)
	observeMutation("store", domain.ActionDeactivate, err)
	if err != nil {
		return err
	}
	return ok(c, "Store deactivated", nil)
}
