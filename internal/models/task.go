package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

// PriorityRank maps priorities to their sort order, lowest urgency first.
// List queries order by this rank after due date.
var PriorityRank = map[TaskPriority]int{
	TaskPriorityLow:    0,
	TaskPriorityMedium: 1,
	TaskPriorityHigh:   2,
	TaskPriorityUrgent: 3,
}

// WorkTask is named to avoid colliding with the scheduling sense of "task"
// in callers; the table stays "work_tasks".
type WorkTask struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description *string      `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'MEDIUM'" json:"priority"`

	// Foreign keys. Customer/Project links are optional and survive the
	// referenced row's deletion as nulls; assignee and creator are required.
	CustomerID   *uint64 `gorm:"index" json:"customer_id"`
	ProjectID    *uint64 `gorm:"index" json:"project_id"`
	AssignedToID uint64  `gorm:"not null;index" json:"assigned_to_id"`
	CreatedByID  uint64  `gorm:"not null;index" json:"created_by_id"`

	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Version     uint64     `gorm:"not null;default:0" json:"-"`

	// Relations
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Project    *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	AssignedTo *User     `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	CreatedBy  *User     `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (WorkTask) TableName() string {
	return "work_tasks"
}
