package dto

import (
	"time"

	"github.com/proroofers/crm-api/internal/models"
)

// ProjectRequest is the complete allow-listed field set for creating or
// replacing a project. The ID is checked against the path on update and
// ignored on create.
type ProjectRequest struct {
	ID          uint64               `json:"id"`
	CustomerID  uint64               `json:"customer_id" binding:"required"`
	ProjectName string               `json:"project_name" binding:"required"`
	Description *string              `json:"description"`
	Status      models.ProjectStatus `json:"status"`

	EstimateDate       *time.Time `json:"estimate_date"`
	ContractSignedDate *time.Time `json:"contract_signed_date"`
	ScheduledStartDate *time.Time `json:"scheduled_start_date"`
	CompletionDate     *time.Time `json:"completion_date"`

	EstimatedCost *float64 `json:"estimated_cost"`
	FinalCost     *float64 `json:"final_cost"`
	AmountPaid    *float64 `json:"amount_paid"`

	ShingleType          string  `json:"shingle_type" binding:"required"`
	ShingleColor         string  `json:"shingle_color" binding:"required"`
	HasMetalWork         bool    `json:"has_metal_work"`
	MetalWorkDescription *string `json:"metal_work_description"`

	Notes *string `json:"notes"`
}
