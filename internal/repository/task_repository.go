package repository

import (
	"errors"

	"github.com/proroofers/crm-api/internal/models"
	"gorm.io/gorm"
)

// taskListOrder sorts by due date ascending with undated tasks last, then
// by priority rank (low to urgent). Priorities persist as strings, so the
// rank is a CASE expression.
const taskListOrder = `
CASE WHEN work_tasks.due_date IS NULL THEN 1 ELSE 0 END,
work_tasks.due_date ASC,
CASE work_tasks.priority
	WHEN 'LOW' THEN 0
	WHEN 'MEDIUM' THEN 1
	WHEN 'HIGH' THEN 2
	WHEN 'URGENT' THEN 3
	ELSE 4
END`

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.WorkTask) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.WorkTask, error) {
	var task models.WorkTask
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// List returns all tasks with relations, ordered by due date then priority
func (r *GormTaskRepository) List() ([]models.WorkTask, error) {
	var tasks []models.WorkTask
	err := r.db.
		Preload("AssignedTo").
		Preload("CreatedBy").
		Preload("Customer").
		Preload("Project").
		Order(taskListOrder).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update replaces the task's mutable fields, guarded by the loaded version.
func (r *GormTaskRepository) Update(task *models.WorkTask, loadedVersion uint64) error {
	task.Version = loadedVersion + 1
	res := r.db.Model(&models.WorkTask{}).
		Where("id = ? AND version = ?", task.ID, loadedVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(task)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.WorkTask{}).Where("id = ?", task.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}
	return nil
}

// Delete removes the task
func (r *GormTaskRepository) Delete(id uint64) error {
	res := r.db.Delete(&models.WorkTask{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
