package handlers_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"pms-project-backend/internal/database"
	"pms-project-backend/internal/models"
)

// memStore is an in-memory ProjectStore with the same presence and
// soft-delete rules as the SQL repository.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*models.Project
	clock  time.Time

	// err fails every store call; pingErr fails Ping only
	err     error
	pingErr error
}

func newMemStore() *memStore {
	return &memStore{
		nextID: 1,
		rows:   map[int64]*models.Project{},
		clock:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *memStore) List(context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	out := []models.Project{}
	for _, p := range s.rows {
		if !p.IsDeleted {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) GetByID(_ context.Context, id int64) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	p, ok := s.rows[id]
	if !ok || p.IsDeleted {
		return nil, database.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) Create(_ context.Context, in models.ProjectInput) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	in = in.ForInsert()
	p := &models.Project{
		ID:             s.nextID,
		IsInsured:      in.IsInsured.OrElse(false),
		ApprovalStatus: in.ApprovalStatus.OrElse(models.ApprovalStatusPending),
		Completion:     in.Completion.OrElse(0),
		CreatedBy:      ptr(in.CreatedBy),
		CreatedAt:      s.tick(),
		IsActive:       true,
	}
	apply(p, in)
	s.rows[p.ID] = p
	s.nextID++

	cp := *p
	return &cp, nil
}

func (s *memStore) Update(_ context.Context, id int64, in models.ProjectInput) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	p, ok := s.rows[id]
	if !ok || p.IsDeleted {
		return nil, database.ErrNotFound
	}
	apply(p, in)
	if v, ok := in.IsInsured.Get(); ok {
		p.IsInsured = v
	}
	if v, ok := in.ApprovalStatus.Get(); ok {
		p.ApprovalStatus = v
	}
	if v, ok := in.Completion.Get(); ok {
		p.Completion = v
	}
	if v, ok := in.IsActive.Get(); ok {
		p.IsActive = v
	}
	p.UpdatedBy = ptr(in.UpdatedBy)
	now := s.tick()
	p.UpdatedAt = &now

	cp := *p
	return &cp, nil
}

func (s *memStore) SoftDelete(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}

	p, ok := s.rows[id]
	if !ok || p.IsDeleted {
		return 0, database.ErrNotFound
	}
	p.IsDeleted = true
	return id, nil
}

func (s *memStore) HardDelete(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}

	if _, ok := s.rows[id]; !ok {
		return 0, database.ErrNotFound
	}
	delete(s.rows, id)
	return id, nil
}

func (s *memStore) Ping(context.Context) error {
	return s.pingErr
}

var errDatabaseDown = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

// apply copies the supplied text/id fields; flags with column defaults are
// handled by the caller.
func apply(p *models.Project, in models.ProjectInput) {
	set(&p.ProjectNumber, in.ProjectNumber)
	set(&p.Name, in.Name)
	set(&p.LeadID, in.LeadID)
	set(&p.ProjectType, in.ProjectType)
	set(&p.CustomerID, in.CustomerID)
	set(&p.WarehouseID, in.WarehouseID)
	set(&p.ProjectSpecies, in.ProjectSpecies)
	set(&p.ProjectStatus, in.ProjectStatus)
	set(&p.CommentBaseline, in.CommentBaseline)
	set(&p.CommentOther, in.CommentOther)
	set(&p.ProjectTemplateID, in.ProjectTemplateID)
	set(&p.Location, in.Location)
	set(&p.ProjectAddress, in.ProjectAddress)
	set(&p.InsuranceNo, in.InsuranceNo)
	set(&p.ApprovalComment, in.ApprovalComment)
	set(&p.ApprovedBy, in.ApprovedBy)
	if v, ok := in.PriceCustomer.Get(); ok {
		p.PriceCustomer.Decimal, p.PriceCustomer.Valid = v, true
	}
	if v, ok := in.EstimatedStart.Get(); ok {
		if t, err := time.Parse(time.DateOnly, v); err == nil {
			p.EstimatedStart = &t
		}
	}
}

func set[T any](dst **T, o models.Optional[T]) {
	if v, ok := o.Get(); ok {
		*dst = &v
	}
}

func ptr[T any](o models.Optional[T]) *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}
