package domain

// Capability names one guarded action.
type Capability string

const (
	CapProjectCreate    Capability = "project.create"
	CapProjectUpdate    Capability = "project.update"
	CapProjectDelete    Capability = "project.delete"
	CapModuleCreate     Capability = "module.create"
	CapModuleUpdate     Capability = "module.update"
	CapModuleDelete     Capability = "module.delete"
	CapSprintCreate     Capability = "sprint.create"
	CapSprintUpdate     Capability = "sprint.update"
	CapSprintDelete     Capability = "sprint.delete"
	CapTaskCreate       Capability = "task.create"
	CapTaskUpdate       Capability = "task.update"
	CapTaskDelete       Capability = "task.delete"
	CapTimesheetApprove Capability = "timesheet.approve"
	CapUserSetRole      Capability = "user.set_role"
)

// Policy maps each capability to the roles allowed to exercise it.
// Capabilities absent from the policy are denied to everyone.
type Policy map[Capability][]UserRole

// Allows reports whether role holds capability c.
func (p Policy) Allows(role UserRole, c Capability) bool {
	for _, r := range p[c] {
		if r == role {
			return true
		}
	}
	return false
}

// DefaultPolicy returns the role sets the API enforces.
func DefaultPolicy() Policy {
	managers := []UserRole{UserRoleAdmin, UserRoleProjectManager}
	adminOnly := []UserRole{UserRoleAdmin}

	return Policy{
		CapProjectCreate:    managers,
		CapProjectUpdate:    managers,
		CapProjectDelete:    adminOnly,
		CapModuleCreate:     managers,
		CapModuleUpdate:     managers,
		CapModuleDelete:     managers,
		CapSprintCreate:     managers,
		CapSprintUpdate:     managers,
		CapSprintDelete:     managers,
		CapTaskCreate:       managers,
		CapTaskUpdate:       {UserRoleAdmin, UserRoleProjectManager, UserRoleDeveloper, UserRoleQA},
		CapTaskDelete:       managers,
		CapTimesheetApprove: managers,
		CapUserSetRole:      adminOnly,
	}
}
