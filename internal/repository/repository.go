package repository

import (
	"errors"

	"github.com/proroofers/crm-api/internal/models"
)

var (
	// ErrNotFound is returned when the target row does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrConflict is returned when a guarded update matched no row because
	// the row changed since it was read. The row still exists; the caller
	// must retry with fresh data.
	ErrConflict = errors.New("repository: concurrent modification")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// ExistsByUsername reports whether a user with the username exists
	ExistsByUsername(username string) (bool, error)

	// ExistsByEmail reports whether a user with the email exists
	ExistsByEmail(email string) (bool, error)

	// List returns all users
	List() ([]models.User, error)
}

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	// Create creates a new customer
	Create(customer *models.Customer) error

	// FindByID finds a customer by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Customer, error)

	// Search returns customers matching a contains filter, bounded by limit
	Search(term string, limit int) ([]models.Customer, error)

	// Update replaces the customer's mutable fields, guarded by the version
	// read at load time. Returns ErrConflict or ErrNotFound on a miss.
	Update(customer *models.Customer, loadedVersion uint64) error

	// Delete removes the customer, its projects, and detaches its tasks
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// List returns all projects
	List() ([]models.Project, error)

	// ListByCustomer returns all projects for a customer
	ListByCustomer(customerID uint64) ([]models.Project, error)

	// Update replaces the project's mutable fields, guarded by the version
	// read at load time. Returns ErrConflict or ErrNotFound on a miss.
	Update(project *models.Project, loadedVersion uint64) error

	// Delete removes the project and detaches its tasks
	Delete(id uint64) error
}

// TaskRepository defines the interface for work task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.WorkTask) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.WorkTask, error)

	// List returns all tasks ordered by due date, then priority
	List() ([]models.WorkTask, error)

	// Update replaces the task's mutable fields, guarded by the version
	// read at load time. Returns ErrConflict or ErrNotFound on a miss.
	Update(task *models.WorkTask, loadedVersion uint64) error

	// Delete removes the task
	Delete(id uint64) error
}
