package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/proroofers/crm-api/internal/dto"
	"github.com/proroofers/crm-api/internal/models"
	"github.com/proroofers/crm-api/internal/policy"
	"github.com/proroofers/crm-api/internal/repository"
	"github.com/proroofers/crm-api/internal/utils"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskForbidden     = errors.New("you can only modify tasks assigned to you")
	ErrAssigneeNotFound  = errors.New("assigned user does not exist")
	ErrInvalidTaskStatus = errors.New("invalid task status")
	ErrInvalidPriority   = errors.New("invalid task priority")
)

var validTaskStatuses = map[models.TaskStatus]bool{
	models.TaskStatusPending:    true,
	models.TaskStatusInProgress: true,
	models.TaskStatusCompleted:  true,
	models.TaskStatusCancelled:  true,
}

// TaskService handles work task business logic. The actor's role is
// re-read from storage on every mutation rather than trusted from the
// token, so role changes take effect immediately.
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// List returns all tasks ordered by due date, then priority. Any
// authenticated user sees all tasks.
func (s *TaskService) List() ([]models.WorkTask, error) {
	return s.taskRepo.List()
}

// Get returns a task with its relations
func (s *TaskService) Get(id uint64) (*models.WorkTask, error) {
	task, err := s.taskRepo.FindByID(id, "AssignedTo", "CreatedBy", "Customer", "Project")
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// Create persists a new task. The creator is the caller; the client
// cannot impersonate another creator.
func (s *TaskService) Create(input dto.CreateTaskRequest, creatorID uint64) (*models.WorkTask, error) {
	status := input.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	priority := input.Priority
	if priority == "" {
		priority = models.TaskPriorityMedium
	}
	if !validTaskStatuses[status] {
		return nil, ErrInvalidTaskStatus
	}
	if _, ok := models.PriorityRank[priority]; !ok {
		return nil, ErrInvalidPriority
	}

	if err := s.ensureUserExists(input.AssignedToID); err != nil {
		return nil, err
	}

	task := &models.WorkTask{
		Title:        input.Title,
		Description:  input.Description,
		Status:       status,
		Priority:     priority,
		CustomerID:   input.CustomerID,
		ProjectID:    input.ProjectID,
		AssignedToID: input.AssignedToID,
		CreatedByID:  creatorID,
		DueDate:      utils.NormalizeUTC(input.DueDate),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, "AssignedTo", "CreatedBy", "Customer", "Project")
}

// Update replaces every allow-listed field from the submitted values.
// Staff may only update tasks assigned to them; admins are unrestricted.
// CreatedAt and the creator are always carried over from the existing row.
func (s *TaskService) Update(taskID, actorID uint64, input dto.UpdateTaskRequest) error {
	existing, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.authorizeMutation(actorID, existing); err != nil {
		return err
	}

	if !validTaskStatuses[input.Status] {
		return ErrInvalidTaskStatus
	}
	if _, ok := models.PriorityRank[input.Priority]; !ok {
		return ErrInvalidPriority
	}
	if err := s.ensureUserExists(input.AssignedToID); err != nil {
		return err
	}

	task := &models.WorkTask{
		ID:           taskID,
		Title:        input.Title,
		Description:  input.Description,
		Status:       input.Status,
		Priority:     input.Priority,
		CustomerID:   input.CustomerID,
		ProjectID:    input.ProjectID,
		AssignedToID: input.AssignedToID,
		CreatedByID:  existing.CreatedByID,
		DueDate:      utils.NormalizeUTC(input.DueDate),
		CreatedAt:    existing.CreatedAt,
		CompletedAt:  utils.NormalizeUTC(input.CompletedAt),
	}

	if err := s.taskRepo.Update(task, existing.Version); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrTaskNotFound
		case errors.Is(err, repository.ErrConflict):
			return ErrConflict
		}
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes a task under the same ownership rule as Update
func (s *TaskService) Delete(taskID, actorID uint64) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.authorizeMutation(actorID, task); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// authorizeMutation resolves the actor's current role from storage and
// applies the task ownership policy.
func (s *TaskService) authorizeMutation(actorID uint64, task *models.WorkTask) error {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return fmt.Errorf("failed to resolve actor: %w", err)
	}

	if !policy.CanMutateTask(policy.Actor{ID: actor.ID, Role: actor.Role}, task) {
		return ErrTaskForbidden
	}
	return nil
}

func (s *TaskService) ensureUserExists(userID uint64) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssigneeNotFound
		}
		return fmt.Errorf("failed to check assignee: %w", err)
	}
	return nil
}
