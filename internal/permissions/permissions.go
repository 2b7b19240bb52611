package permissions

import (
	"github.com/dkueng01/team-rule-tracker/internal/database/models"
)

// Operation identifies a team-scoped action that can be permission-checked.
type Operation string

const (
	OpViewTeam           Operation = "team:view"
	OpManageRules        Operation = "rules:manage"
	OpManageRuleBreaks   Operation = "rule_breaks:manage"
	OpManagePayments     Operation = "payments:manage"
	OpManageExpenses     Operation = "expenses:manage"
	OpManageJoinSettings Operation = "join_settings:manage"
	OpManageJoinRequests Operation = "join_requests:manage"
	OpViewAdminData      Operation = "admin_data:view"
)

// CanPerform is the authorization policy: a pure mapping from (role, operation)
// to allow/deny. Absent membership (RoleNone) is denied everything.
func CanPerform(role models.MemberRole, op Operation) bool {
	switch op {
	case OpViewTeam:
		return role == models.RoleOwner || role == models.RoleAdmin || role == models.RoleMember
	case OpManageRules,
		OpManageRuleBreaks,
		OpManagePayments,
		OpManageExpenses,
		OpManageJoinSettings,
		OpManageJoinRequests,
		OpViewAdminData:
		return role.IsAdmin()
	}
	return false
}
