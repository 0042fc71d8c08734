package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/proroofers/crm-api/internal/dto"
	apierrors "github.com/proroofers/crm-api/internal/errors"
	"github.com/proroofers/crm-api/internal/logs"
	"github.com/proroofers/crm-api/internal/services"
)

// ProjectHandler coordinates project HTTP handlers. Like customers,
// projects carry no per-row authorization.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects returns all projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListProjectsByCustomer returns all projects for a customer
func (h *ProjectHandler) ListProjectsByCustomer(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("customerId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid customer id")
		return
	}

	projects, err := h.projectService.ListByCustomer(customerID)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject returns a project by ID with its customer
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject creates a project for an existing customer
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(req)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject fully replaces the project's allow-listed fields
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.Update(id, req); err != nil {
		respondProjectError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteProject removes the project
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(id); err != nil {
		respondProjectError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrIDMismatch),
		errors.Is(err, services.ErrProjectCustomerGone),
		errors.Is(err, services.ErrInvalidProjectStatus),
		errors.Is(err, services.ErrNegativeAmount):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		apierrors.Conflict(c, apierrors.ErrCodeConflict, err.Error())
	default:
		logs.Logger.WithError(err).Error("project request failed")
		apierrors.InternalError(c, "")
	}
}
