package permissions

import (
	"testing"

	"github.com/dkueng01/team-rule-tracker/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestCanPerform(t *testing.T) {
	adminOps := []Operation{
		OpManageRules,
		OpManageRuleBreaks,
		OpManagePayments,
		OpManageExpenses,
		OpManageJoinSettings,
		OpManageJoinRequests,
		OpViewAdminData,
	}

	t.Run("every role can view team data", func(t *testing.T) {
		for _, role := range []models.MemberRole{models.RoleOwner, models.RoleAdmin, models.RoleMember} {
			assert.True(t, CanPerform(role, OpViewTeam), "role %q", role)
		}
	})

	t.Run("non-members are denied everything", func(t *testing.T) {
		assert.False(t, CanPerform(models.RoleNone, OpViewTeam))
		for _, op := range adminOps {
			assert.False(t, CanPerform(models.RoleNone, op), "op %q", op)
		}
	})

	t.Run("members cannot mutate ledgers or join settings", func(t *testing.T) {
		for _, op := range adminOps {
			assert.False(t, CanPerform(models.RoleMember, op), "op %q", op)
		}
	})

	t.Run("admins and owners can perform every admin operation", func(t *testing.T) {
		for _, role := range []models.MemberRole{models.RoleOwner, models.RoleAdmin} {
			for _, op := range adminOps {
				assert.True(t, CanPerform(role, op), "role %q op %q", role, op)
			}
		}
	})

	t.Run("unknown operation is denied even for owners", func(t *testing.T) {
		assert.False(t, CanPerform(models.RoleOwner, Operation("something:else")))
	})
}

func TestRoleHelpers(t *testing.T) {
	assert.True(t, models.RoleOwner.IsAdmin())
	assert.True(t, models.RoleAdmin.IsAdmin())
	assert.False(t, models.RoleMember.IsAdmin())
	assert.False(t, models.RoleNone.IsAdmin())

	assert.True(t, models.RoleMember.Valid())
	assert.False(t, models.RoleNone.Valid())
	assert.False(t, models.MemberRole("superuser").Valid())
}
