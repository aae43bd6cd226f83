package domain

import "time"

// Listing is the set of store-scoped resources. Each of them belongs to
// exactly one Store and is transitively owned by that store's owner.
type Listing interface {
	Product | Service | Job | Announcement
}

// StoreScoped is implemented by pointers to every Listing type.
type StoreScoped interface {
	ListingID() int64
	OwningStoreID() int64
	// MarkActive flags a new listing as visible.
	MarkActive()
}

type Product struct {
	ID          int64     `json:"id"          gorm:"primaryKey"`
	Name        string    `json:"name"        gorm:"size:255;not null"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"       gorm:"type:numeric(10,2);not null"`
	StoreID     int64     `json:"storeId"     gorm:"not null;index"`
	Store       *Store    `json:"-"           gorm:"constraint:OnDelete:RESTRICT"`
	Category    string    `json:"category"    gorm:"size:64;not null;index"`
	IsActive    bool      `json:"isActive"    gorm:"not null;default:true;index"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *Product) ListingID() int64     { return p.ID }
func (p *Product) OwningStoreID() int64 { return p.StoreID }
func (p *Product) MarkActive()          { p.IsActive = true }

type Service struct {
	ID          int64     `json:"id"          gorm:"primaryKey"`
	Name        string    `json:"name"        gorm:"size:255;not null"`
	Description string    `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty" gorm:"type:numeric(10,2)"`
	StoreID     int64     `json:"storeId"     gorm:"not null;index"`
	Store       *Store    `json:"-"           gorm:"constraint:OnDelete:RESTRICT"`
	Category    string    `json:"category"    gorm:"size:64;not null;index"`
	IsActive    bool      `json:"isActive"    gorm:"not null;default:true;index"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s *Service) ListingID() int64     { return s.ID }
func (s *Service) OwningStoreID() int64 { return s.StoreID }
func (s *Service) MarkActive()          { s.IsActive = true }

type Job struct {
	ID          int64     `json:"id"          gorm:"primaryKey"`
	Title       string    `json:"title"       gorm:"size:255;not null"`
	Description string    `json:"description,omitempty"`
	Salary      *float64  `json:"salary,omitempty" gorm:"type:numeric(10,2)"`
	Location    string    `json:"location,omitempty"`
	StoreID     int64     `json:"storeId"     gorm:"not null;index"`
	Store       *Store    `json:"-"           gorm:"constraint:OnDelete:RESTRICT"`
	IsActive    bool      `json:"isActive"    gorm:"not null;default:true;index"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (j *Job) ListingID() int64     { return j.ID }
func (j *Job) OwningStoreID() int64 { return j.StoreID }
func (j *Job) MarkActive()          { j.IsActive = true }

type Announcement struct {
	ID        int64     `json:"id"        gorm:"primaryKey"`
	Title     string    `json:"title"     gorm:"size:255;not null"`
	Content   string    `json:"content"   gorm:"not null"`
	StoreID   int64     `json:"storeId"   gorm:"not null;index"`
	Store     *Store    `json:"-"         gorm:"constraint:OnDelete:RESTRICT"`
	IsActive  bool      `json:"isActive"  gorm:"not null;default:true;index"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *Announcement) ListingID() int64     { return a.ID }
func (a *Announcement) OwningStoreID() int64 { return a.StoreID }
func (a *Announcement) MarkActive()          { a.IsActive = true }

// ListingFilter narrows listing queries. Zero values mean "no filter".
// Category is ignored for resources without a category column.
type ListingFilter struct {
	StoreID  int64
	Category string
}
