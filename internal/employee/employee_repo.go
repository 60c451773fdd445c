package employee

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// Store sentinels. The service translates these into API-facing errors
// carrying the offending id.
var (
	ErrDuplicateID = errors.New("employee id already exists")
	ErrNotExist    = errors.New("employee does not exist")
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, pageNumber, pageSize int) ([]Employee, error)
	FindByID(ctx context.Context, id string) (Employee, bool)
	Insert(ctx context.Context, empl Employee) error
	Update(ctx context.Context, empl Employee) error
	Delete(ctx context.Context, id string) bool
	Count(ctx context.Context) int
}

// repository keeps the whole table in one map guarded by a single lock.
// Insert and Update carry their existence check inside the critical
// section, so concurrent same-id writes cannot both succeed.
type repository struct {
	mu        sync.RWMutex
	employees map[string]Employee
}

func NewRepository() Repository {
	return &repository{employees: make(map[string]Employee)}
}

// List returns one page in ascending employeeId order. The order does not
// depend on insertion history, so repeated calls against an unchanged
// table return identical pages. Out-of-range pages are empty, not errors.
func (r *repository) List(ctx context.Context, pageNumber, pageSize int) ([]Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.employees))
	for id := range r.employees {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	offset := (pageNumber - 1) * pageSize
	if offset >= len(ids) {
		return []Employee{}, nil
	}

	end := offset + pageSize
	if end > len(ids) {
		end = len(ids)
	}

	page := make([]Employee, 0, end-offset)
	for _, id := range ids[offset:end] {
		page = append(page, r.employees[id])
	}
	return page, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (Employee, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	empl, ok := r.employees[id]
	return empl, ok
}

// Insert is insert-if-absent: the duplicate check and the write happen
// under the same lock acquisition.
func (r *repository) Insert(ctx context.Context, empl Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[empl.EmployeeID]; ok {
		return ErrDuplicateID
	}
	r.employees[empl.EmployeeID] = empl
	return nil
}

// Update is update-if-present: writing a missing id fails instead of
// creating it.
func (r *repository) Update(ctx context.Context, empl Employee) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[empl.EmployeeID]; !ok {
		return ErrNotExist
	}
	r.employees[empl.EmployeeID] = empl
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return false
	}
	delete(r.employees, id)
	return true
}

func (r *repository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.employees)
}
