package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/proroofers/crm-api/internal/dto"
	"github.com/proroofers/crm-api/internal/models"
	"github.com/proroofers/crm-api/internal/repository"
	"github.com/proroofers/crm-api/internal/utils"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectCustomerGone  = errors.New("referenced customer does not exist")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrNegativeAmount       = errors.New("monetary fields must be non-negative")
)

var validProjectStatuses = map[models.ProjectStatus]bool{
	models.ProjectStatusLead:           true,
	models.ProjectStatusEstimate:       true,
	models.ProjectStatusContractSigned: true,
	models.ProjectStatusScheduled:      true,
	models.ProjectStatusInProgress:     true,
	models.ProjectStatusCompleted:      true,
	models.ProjectStatusCancelled:      true,
}

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo  repository.ProjectRepository
	customerRepo repository.CustomerRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, customerRepo repository.CustomerRepository) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		customerRepo: customerRepo,
	}
}

// List returns all projects
func (s *ProjectService) List() ([]models.Project, error) {
	return s.projectRepo.List()
}

// ListByCustomer returns all projects belonging to a customer
func (s *ProjectService) ListByCustomer(customerID uint64) ([]models.Project, error) {
	return s.projectRepo.ListByCustomer(customerID)
}

// Get returns a project with its customer
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id, "Customer")
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// Create persists a new project. EstimatedCost defaults to 0 when unset;
// milestone dates are normalized to UTC.
func (s *ProjectService) Create(input dto.ProjectRequest) (*models.Project, error) {
	project, err := s.projectFromRequest(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.FindByID(input.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectCustomerGone
		}
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}

	if project.EstimatedCost == nil {
		zero := 0.0
		project.EstimatedCost = &zero
	}

	project.ID = 0
	project.CreatedAt = time.Now().UTC()

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// Update replaces every allow-listed field from the submitted values.
// CreatedAt is always carried over from the existing row.
func (s *ProjectService) Update(pathID uint64, input dto.ProjectRequest) error {
	if input.ID != pathID {
		return ErrIDMismatch
	}

	existing, err := s.projectRepo.FindByID(pathID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	project, err := s.projectFromRequest(input)
	if err != nil {
		return err
	}
	project.ID = pathID
	project.CreatedAt = existing.CreatedAt

	if err := s.projectRepo.Update(project, existing.Version); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrProjectNotFound
		case errors.Is(err, repository.ErrConflict):
			return ErrConflict
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes the project; referencing tasks survive with a nulled link
func (s *ProjectService) Delete(id uint64) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) projectFromRequest(input dto.ProjectRequest) (*models.Project, error) {
	status := input.Status
	if status == "" {
		status = models.ProjectStatusLead
	}
	if !validProjectStatuses[status] {
		return nil, ErrInvalidProjectStatus
	}

	for _, amount := range []*float64{input.EstimatedCost, input.FinalCost, input.AmountPaid} {
		if amount != nil && *amount < 0 {
			return nil, ErrNegativeAmount
		}
	}

	return &models.Project{
		CustomerID:           input.CustomerID,
		ProjectName:          input.ProjectName,
		Description:          input.Description,
		Status:               status,
		EstimateDate:         utils.NormalizeUTC(input.EstimateDate),
		ContractSignedDate:   utils.NormalizeUTC(input.ContractSignedDate),
		ScheduledStartDate:   utils.NormalizeUTC(input.ScheduledStartDate),
		CompletionDate:       utils.NormalizeUTC(input.CompletionDate),
		EstimatedCost:        input.EstimatedCost,
		FinalCost:            input.FinalCost,
		AmountPaid:           input.AmountPaid,
		ShingleType:          input.ShingleType,
		ShingleColor:         input.ShingleColor,
		HasMetalWork:         input.HasMetalWork,
		MetalWorkDescription: input.MetalWorkDescription,
		Notes:                input.Notes,
	}, nil
}
