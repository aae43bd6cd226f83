package domain

import "time"

// Store categories used by the client apps to group storefronts.
const (
	StoreCategoryMarketplace   = "marketplace"
	StoreCategoryServices      = "services"
	StoreCategoryJobs          = "jobs"
	StoreCategoryAnnouncements = "announcements"
)

// Store is owned by exactly one user. Its products, services, jobs and
// announcements are children keyed by store id.
type Store struct {
	ID          int64     `json:"id"          gorm:"primaryKey"`
	Name        string    `json:"name"        gorm:"size:255;not null"`
	Description string    `json:"description,omitempty"`
	OwnerID     int64     `json:"ownerId"     gorm:"not null;index"`
	Owner       *User     `json:"-"           gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Category    string    `json:"category"    gorm:"size:32;not null;index"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty" gorm:"size:32"`
	IsActive    bool      `json:"isActive"    gorm:"not null;default:true;index"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StorePatch carries the optional fields of a store update.
type StorePatch struct {
	Name        *string
	Description *string
	Category    *string
	Address     *string
	Phone       *string
}

// Apply copies every non-nil field of p onto s.
func (p StorePatch) Apply(s *Store) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
}
