package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/proroofers/crm-api/internal/logs"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Task indexes for list ordering and ownership checks
		{"work_tasks", "idx_work_tasks_due_date", "due_date"},
		{"work_tasks", "idx_work_tasks_assigned_to_id", "assigned_to_id"},
		{"work_tasks", "idx_work_tasks_status", "status"},

		// Customer search columns
		{"customers", "idx_customers_last_name", "last_name"},
		{"customers", "idx_customers_email", "email"},

		// Project lookups by customer
		{"projects", "idx_projects_customer_id", "customer_id"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		logs.Logger.WithField("index", idx.name).Info("created index")
	}

	return nil
}
