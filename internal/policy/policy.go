// Package policy holds the pure authorization decisions. Functions here
// have no side effects and no storage access; callers resolve the actor's
// current role before asking.
package policy

import "github.com/proroofers/crm-api/internal/models"

// Action is a mutation kind a policy can rule on.
type Action string

const (
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Actor is the authenticated caller as seen by the policy: identity plus
// the role freshly read from storage.
type Actor struct {
	ID   uint64
	Role models.UserRole
}

// CanMutateTask reports whether the actor may update or delete the task.
// Admins are unrestricted; staff may only touch tasks assigned to them.
// The same rule applies to update and delete.
func CanMutateTask(actor Actor, task *models.WorkTask) bool {
	if actor.Role == models.RoleAdmin {
		return true
	}
	return task.AssignedToID == actor.ID
}

// CanMutateCustomer reports whether the actor may mutate any customer.
// Customers carry no per-row restriction: any authenticated user may.
// Tasks are the only ownership-restricted resource.
func CanMutateCustomer(actor Actor) bool {
	return actor.ID != 0
}

// CanMutateProject mirrors CanMutateCustomer; projects are unrestricted.
func CanMutateProject(actor Actor) bool {
	return actor.ID != 0
}
