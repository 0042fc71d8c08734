package dto

// CustomerRequest is the complete allow-listed field set for creating or
// replacing a customer. Updates are a full-field replace, never a partial
// patch; the ID is checked against the path on update and ignored on create.
type CustomerRequest struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`

	BillingStreet  string `json:"billing_street" binding:"required"`
	BillingCity    string `json:"billing_city" binding:"required"`
	BillingState   string `json:"billing_state" binding:"required"`
	BillingZipCode string `json:"billing_zip_code" binding:"required"`

	PropertyStreet  string `json:"property_street" binding:"required"`
	PropertyCity    string `json:"property_city" binding:"required"`
	PropertyState   string `json:"property_state" binding:"required"`
	PropertyZipCode string `json:"property_zip_code" binding:"required"`
}
