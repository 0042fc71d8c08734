package models

import "time"

type Customer struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string `gorm:"type:varchar(50);not null" json:"phone"`

	// Billing address
	BillingStreet  string `gorm:"type:varchar(255);not null" json:"billing_street"`
	BillingCity    string `gorm:"type:varchar(100);not null" json:"billing_city"`
	BillingState   string `gorm:"type:varchar(50);not null" json:"billing_state"`
	BillingZipCode string `gorm:"type:varchar(20);not null" json:"billing_zip_code"`

	// Property address (where the work happens)
	PropertyStreet  string `gorm:"type:varchar(255);not null" json:"property_street"`
	PropertyCity    string `gorm:"type:varchar(100);not null" json:"property_city"`
	PropertyState   string `gorm:"type:varchar(50);not null" json:"property_state"`
	PropertyZipCode string `gorm:"type:varchar(20);not null" json:"property_zip_code"`

	CreatedAt time.Time `json:"created_at"`
	Version   uint64    `gorm:"not null;default:0" json:"-"`

	// Relations
	Projects []Project `gorm:"foreignKey:CustomerID" json:"projects,omitempty"`
}
