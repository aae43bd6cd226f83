package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.User
	err    error // if set, every call returns it
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) add(u domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = &u
	clone := u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Username == u.Username || existing.Email == u.Email {
			return domain.ErrDuplicateUser
		}
	}
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.byID {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) Save(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.ID != u.ID && existing.Email == u.Email {
			return domain.ErrDuplicateUser
		}
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) Deactivate(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = false
	return nil
}

type stubStoreRepo struct {
	nextID int64
	byID   map[int64]*domain.Store
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{byID: make(map[int64]*domain.Store)}
}

func (r *stubStoreRepo) Create(_ context.Context, s *domain.Store) error {
	r.nextID++
	s.ID = r.nextID
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubStoreRepo) FindByID(_ context.Context, id int64) (*domain.Store, error) {
	s, ok := r.byID[id]
	if !ok || !s.IsActive {
		return nil, domain.ErrStoreNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubStoreRepo) List(_ context.Context, f ports.StoreFilter) ([]domain.Store, error) {
	var out []domain.Store
	for _, s := range r.byID {
		if !s.IsActive || (f.OwnerID != 0 && s.OwnerID != f.OwnerID) || (f.Category != "" && s.Category != f.Category) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubStoreRepo) OwnerOf(_ context.Context, id int64) (int64, error) {
	s, ok := r.byID[id]
	if !ok {
		return 0, domain.ErrStoreNotFound
	}
	return s.OwnerID, nil
}

func (r *stubStoreRepo) Save(_ context.Context, s *domain.Store) error {
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubStoreRepo) Deactivate(_ context.Context, id int64) error {
	s, ok := r.byID[id]
	if !ok {
		return domain.ErrStoreNotFound
	}
	s.IsActive = false
	return nil
}

type stubProductRepo struct {
	nextID int64
	byID   map[int64]*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[int64]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	r.nextID++
	p.ID = r.nextID
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok || !p.IsActive {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context, f domain.ListingFilter) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.byID {
		if p.IsActive && (f.StoreID == 0 || p.StoreID == f.StoreID) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Save(_ context.Context, p *domain.Product) error {
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Deactivate(_ context.Context, id int64) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.IsActive = false
	return nil
}

type stubRevocations struct {
	revoked map[string]time.Time
	err     error
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{revoked: make(map[string]time.Time)}
}

func (s *stubRevocations) Revoke(_ context.Context, id string, exp time.Time) error {
	if s.err != nil {
		return s.err
	}
	s.revoked[id] = exp
	return nil
}

func (s *stubRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.revoked[id]
	return ok, nil
}

type stubAuditRepo struct {
	events []domain.AuditEvent
	err    error
}

func (s *stubAuditRepo) InsertEvent(_ context.Context, e *domain.AuditEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, *e)
	return nil
}

var errBackendDown = errors.New("connection refused")

// fixedClock returns a clock that can be moved forward by the test.
type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time          { return c.t }
func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
