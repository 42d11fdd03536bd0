package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, role := range AllRoles() {
		parsed, err := ParseRole(string(role))
		assert.NoError(t, err)
		assert.Equal(t, role, parsed)
	}

	_, err := ParseRole("principal")
	assert.Error(t, err)
	_, err = ParseRole("")
	assert.Error(t, err)
}

func TestRoleCollections(t *testing.T) {
	assert.Equal(t, "students", RoleStudent.Collection())
	assert.Equal(t, "teachers", RoleTeacher.Collection())
	assert.Equal(t, "admins", RoleAdmin.Collection())

	// Parents and super admins have no mirror collection.
	assert.Empty(t, RoleParent.Collection())
	assert.Empty(t, RoleSuperAdmin.Collection())
}
