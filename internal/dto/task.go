package dto

import (
	"time"

	"github.com/proroofers/crm-api/internal/models"
)

// CreateTaskRequest is the payload for creating a task. The creator is
// always stamped from the caller's identity, never taken from the body.
type CreateTaskRequest struct {
	Title        string              `json:"title" binding:"required"`
	Description  *string             `json:"description"`
	Status       models.TaskStatus   `json:"status"`
	Priority     models.TaskPriority `json:"priority"`
	CustomerID   *uint64             `json:"customer_id"`
	ProjectID    *uint64             `json:"project_id"`
	AssignedToID uint64              `json:"assigned_to_id" binding:"required"`
	DueDate      *time.Time          `json:"due_date"`
}

// UpdateTaskRequest is the complete allow-listed field set for replacing a
// task. The target is identified purely by the path; the body carries no ID.
type UpdateTaskRequest struct {
	Title        string              `json:"title" binding:"required"`
	Description  *string             `json:"description"`
	Priority     models.TaskPriority `json:"priority" binding:"required"`
	Status       models.TaskStatus   `json:"status" binding:"required"`
	AssignedToID uint64              `json:"assigned_to_id" binding:"required"`
	CustomerID   *uint64             `json:"customer_id"`
	ProjectID    *uint64             `json:"project_id"`
	DueDate      *time.Time          `json:"due_date"`
	CompletedAt  *time.Time          `json:"completed_at"`
}
