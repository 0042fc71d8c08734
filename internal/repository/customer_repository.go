package repository

import (
	"errors"

	"github.com/proroofers/crm-api/internal/database"
	"github.com/proroofers/crm-api/internal/models"
	"gorm.io/gorm"
)

// GormCustomerRepository is a GORM implementation of CustomerRepository
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create creates a new customer
func (r *GormCustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// FindByID finds a customer by ID with optional preloading
func (r *GormCustomerRepository) FindByID(id uint64, preload ...string) (*models.Customer, error) {
	var customer models.Customer
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// Search returns customers matching a contains filter, bounded by limit
func (r *GormCustomerRepository) Search(term string, limit int) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.
		Preload("Projects").
		Scopes(database.CustomerSearch(term)).
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// Update replaces the customer's mutable fields, guarded by the loaded version.
func (r *GormCustomerRepository) Update(customer *models.Customer, loadedVersion uint64) error {
	customer.Version = loadedVersion + 1
	res := r.db.Model(&models.Customer{}).
		Where("id = ? AND version = ?", customer.ID, loadedVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(customer)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.resolveUpdateMiss(customer.ID)
	}
	return nil
}

// Delete removes the customer together with its projects inside one
// transaction. Tasks pointing at the customer or any of its projects keep
// existing with their references nulled.
func (r *GormCustomerRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.WorkTask{}).
			Where("customer_id = ?", id).
			Update("customer_id", nil).Error; err != nil {
			return err
		}

		projectIDs := tx.Model(&models.Project{}).Select("id").Where("customer_id = ?", id)
		if err := tx.Model(&models.WorkTask{}).
			Where("project_id IN (?)", projectIDs).
			Update("project_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("customer_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Customer{}, id).Error
	})
}

// resolveUpdateMiss distinguishes "row gone" from "row changed since read".
func (r *GormCustomerRepository) resolveUpdateMiss(id uint64) error {
	var count int64
	if err := r.db.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrConflict
}
