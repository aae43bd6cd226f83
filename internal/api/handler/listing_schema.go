package handler

import "github.com/souqly/marketplace-api/internal/core/domain"

// --- Products ---

type productRequest struct {
	Name        string   `json:"name"        validate:"required,max=255"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	StoreID     int64    `json:"storeId"     validate:"required,gt=0"`
	Category    string   `json:"category"    validate:"required,max=64"`
}

func (r productRequest) listing() *domain.Product {
	return &domain.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		StoreID:     r.StoreID,
		Category:    r.Category,
	}
}

type productUpdateRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Category    *string  `json:"category"    validate:"omitempty,min=1,max=64"`
}

func (r productUpdateRequest) empty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil && r.Category == nil
}

func (r productUpdateRequest) apply(p *domain.Product) {
	setIf(&p.Name, r.Name)
	setIf(&p.Description, r.Description)
	setIf(&p.Price, r.Price)
	setIf(&p.Category, r.Category)
}

// --- Services ---

type serviceRequest struct {
	Name        string   `json:"name"        validate:"required,max=255"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	StoreID     int64    `json:"storeId"     validate:"required,gt=0"`
	Category    string   `json:"category"    validate:"required,max=64"`
}

func (r serviceRequest) listing() *domain.Service {
	return &domain.Service{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		StoreID:     r.StoreID,
		Category:    r.Category,
	}
}

type serviceUpdateRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Category    *string  `json:"category"    validate:"omitempty,min=1,max=64"`
}

func (r serviceUpdateRequest) empty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil && r.Category == nil
}

func (r serviceUpdateRequest) apply(s *domain.Service) {
	setIf(&s.Name, r.Name)
	setIf(&s.Description, r.Description)
	if r.Price != nil {
		price := *r.Price
		s.Price = &price
	}
	setIf(&s.Category, r.Category)
}

// --- Jobs ---

type jobRequest struct {
	Title       string   `json:"title"       validate:"required,max=255"`
	Description string   `json:"description"`
	Salary      *float64 `json:"salary"      validate:"omitempty,gte=0"`
	Location    string   `json:"location"    validate:"max=255"`
	StoreID     int64    `json:"storeId"     validate:"required,gt=0"`
}

func (r jobRequest) listing() *domain.Job {
	return &domain.Job{
		Title:       r.Title,
		Description: r.Description,
		Salary:      r.Salary,
		Location:    r.Location,
		StoreID:     r.StoreID,
	}
}

type jobUpdateRequest struct {
	Title       *string  `json:"title"       validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	Salary      *float64 `json:"salary"      validate:"omitempty,gte=0"`
	Location    *string  `json:"location"    validate:"omitempty,max=255"`
}

func (r jobUpdateRequest) empty() bool {
	return r.Title == nil && r.Description == nil && r.Salary == nil && r.Location == nil
}

func (r jobUpdateRequest) apply(j *domain.Job) {
	setIf(&j.Title, r.Title)
	setIf(&j.Description, r.Description)
	if r.Salary != nil {
		salary := *r.Salary
		j.Salary = &salary
	}
	setIf(&j.Location, r.Location)
}

// --- Announcements ---

type announcementRequest struct {
	Title   string `json:"title"   validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
	StoreID int64  `json:"storeId" validate:"required,gt=0"`
}

func (r announcementRequest) listing() *domain.Announcement {
	return &domain.Announcement{Title: r.Title, Content: r.Content, StoreID: r.StoreID}
}

type announcementUpdateRequest struct {
	Title   *string `json:"title"   validate:"omitempty,min=1,max=255"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

func (r announcementUpdateRequest) empty() bool {
	return r.Title == nil && r.Content == nil
}

func (r announcementUpdateRequest) apply(a *domain.Announcement) {
	setIf(&a.Title, r.Title)
	setIf(&a.Content, r.Content)
}

func setIf[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}
