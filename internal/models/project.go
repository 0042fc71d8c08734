package models

import "time"

type ProjectStatus string

const (
	ProjectStatusLead           ProjectStatus = "LEAD"
	ProjectStatusEstimate       ProjectStatus = "ESTIMATE"
	ProjectStatusContractSigned ProjectStatus = "CONTRACT_SIGNED"
	ProjectStatusScheduled      ProjectStatus = "SCHEDULED"
	ProjectStatusInProgress     ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted      ProjectStatus = "COMPLETED"
	ProjectStatusCancelled      ProjectStatus = "CANCELLED"
)

type Project struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	CustomerID  uint64        `gorm:"not null;index" json:"customer_id"`
	ProjectName string        `gorm:"type:varchar(255);not null" json:"project_name"`
	Description *string       `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(30);not null;default:'LEAD'" json:"status"`

	// Milestones
	CreatedAt          time.Time  `json:"created_at"`
	EstimateDate       *time.Time `json:"estimate_date"`
	ContractSignedDate *time.Time `json:"contract_signed_date"`
	ScheduledStartDate *time.Time `json:"scheduled_start_date"`
	CompletionDate     *time.Time `json:"completion_date"`

	// Financial
	EstimatedCost *float64 `gorm:"type:decimal(12,2)" json:"estimated_cost"`
	FinalCost     *float64 `gorm:"type:decimal(12,2)" json:"final_cost"`
	AmountPaid    *float64 `gorm:"type:decimal(12,2)" json:"amount_paid"`

	// Work details
	ShingleType         string  `gorm:"type:varchar(100);not null" json:"shingle_type"`
	ShingleColor        string  `gorm:"type:varchar(100);not null" json:"shingle_color"`
	HasMetalWork        bool    `gorm:"not null;default:false" json:"has_metal_work"`
	MetalWorkDescription *string `gorm:"type:text" json:"metal_work_description"`

	Notes   *string `gorm:"type:text" json:"notes"`
	Version uint64  `gorm:"not null;default:0" json:"-"`

	// Relations
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}
