package domain

import "time"

const (
	RoleCustomer   = "customer"
	RoleStoreOwner = "store_owner"
	RoleAdmin      = "admin"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleStoreOwner, RoleAdmin:
		return true
	}
	return false
}

// User models a registered marketplace account. Users are never hard-deleted;
// deactivation clears IsActive.
type User struct {
	ID           int64     `json:"id"        gorm:"primaryKey"`
	Username     string    `json:"username"  gorm:"size:64;not null;uniqueIndex"`
	Email        string    `json:"email"     gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-"         gorm:"not null"`
	FullName     string    `json:"fullName"  gorm:"size:255;not null"`
	Phone        string    `json:"phone,omitempty" gorm:"size:32"`
	Role         string    `json:"role"      gorm:"size:20;not null;default:'customer';index"`
	IsActive     bool      `json:"isActive"  gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserPatch carries the optional fields of a profile update. Nil means
// "leave unchanged".
type UserPatch struct {
	Email    *string
	FullName *string
	Phone    *string
	Role     *string
	IsActive *bool
}

// Privileged reports whether the patch touches fields only an admin may change.
func (p UserPatch) Privileged() bool {
	return p.Role != nil || p.IsActive != nil
}
