package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proroofers/crm-api/internal/dto"
	apierrors "github.com/proroofers/crm-api/internal/errors"
	"github.com/proroofers/crm-api/internal/logs"
	"github.com/proroofers/crm-api/internal/middleware"
	"github.com/proroofers/crm-api/internal/services"
)

// TaskHandler coordinates work task HTTP handlers. Reads are open to any
// authenticated user; mutations go through the ownership policy.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns all tasks ordered by due date then priority
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.List()
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask returns a task by ID with its relations
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(id)
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a task; the creator is always the caller
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(req, userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask fully replaces the task's allow-listed fields. Staff are
// restricted to tasks assigned to them; admins are unrestricted.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.taskService.Update(id, userID, req); err != nil {
		respondTaskError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteTask removes a task under the same ownership rule as UpdateTask
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(id, userID); err != nil {
		respondTaskError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskForbidden):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrAssigneeNotFound),
		errors.Is(err, services.ErrInvalidTaskStatus),
		errors.Is(err, services.ErrInvalidPriority):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		apierrors.Conflict(c, apierrors.ErrCodeConflict, err.Error())
	default:
		logs.Logger.WithError(err).Error("task request failed")
		apierrors.InternalError(c, "")
	}
}
