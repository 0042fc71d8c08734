package repository

import (
	"errors"

	"github.com/proroofers/crm-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// List returns all projects with their customer preloaded
func (r *GormProjectRepository) List() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Preload("Customer").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListByCustomer returns all projects for a customer
func (r *GormProjectRepository) ListByCustomer(customerID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.
		Preload("Customer").
		Where("customer_id = ?", customerID).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update replaces the project's mutable fields, guarded by the loaded version.
func (r *GormProjectRepository) Update(project *models.Project, loadedVersion uint64) error {
	project.Version = loadedVersion + 1
	res := r.db.Model(&models.Project{}).
		Where("id = ? AND version = ?", project.ID, loadedVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(project)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Project{}).Where("id = ?", project.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}
	return nil
}

// Delete removes the project; tasks referencing it keep existing with a
// nulled project reference.
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.WorkTask{}).
			Where("project_id = ?", id).
			Update("project_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}
