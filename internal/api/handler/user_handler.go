package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateUserRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email,max=255"`
	FullName *string `json:"fullName" validate:"omitempty,min=1,max=255"`
	Phone    *string `json:"phone"    validate:"omitempty,max=32"`
	Role     *string `json:"role"     validate:"omitempty,oneof=customer store_owner admin"`
	IsActive *bool   `json:"isActive"`
}

func (r updateUserRequest) patch() domain.UserPatch {
	return domain.UserPatch{
		Email:    r.Email,
		FullName: r.FullName,
		Phone:    r.Phone,
		Role:     r.Role,
		IsActive: r.IsActive,
	}
}

func (r updateUserRequest) empty() bool {
	return r.Email == nil && r.FullName == nil && r.Phone == nil && r.Role == nil && r.IsActive == nil
}

// Me returns the account of the authenticated caller.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope{data=domain.User}
// @Failure      401  {object}  Envelope
// @Router       /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	user, err := h.users.Get(c.Request().Context(), p, p.UserID)
	if err != nil {
		return err
	}
	return ok(c, "User retrieved", user)
}

// List returns every account. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope{data=[]domain.User}
// @Failure      403  {object}  Envelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	users, err := h.users.List(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return okList(c, "Users retrieved", users)
}

// Get returns one account; callers may read their own, admins any.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  Envelope{data=domain.User}
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.users.Get(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return ok(c, "User retrieved", user)
}

// Update changes profile fields; role and isActive are admin only.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  Envelope{data=domain.User}
// @Failure      400   {object}  Envelope
// @Failure      403   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.empty() {
		return domain.Invalid("no valid fields to update")
	}

	user, err := h.users.Update(c.Request().Context(), p, id, req.patch())
	observeMutation("user", domain.ActionUpdate, err)
	if err != nil {
		return err
	}
	return ok(c, "User updated", user)
}

// Deactivate disables an account. Admin only.
//
// @Summary      Deactivate user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /users/{id} [delete]
func (h *UserHandler) Deactivate(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.users.Deactivate(c.Request().Context(), p, id); err != nil {
		return err
	}
	observeMutation("user", domain.ActionDeactivate, nil)
	return ok(c, "User deactivated", nil)
}
