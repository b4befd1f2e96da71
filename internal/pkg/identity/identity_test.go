package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityRoles(t *testing.T) {
	id := Identity{SubjectID: "user123", Roles: []string{"user", "Admin"}}

	assert.True(t, id.Authenticated())
	assert.True(t, id.IsAdmin())
	assert.True(t, id.HasRole(RoleUser))
	assert.False(t, id.HasRole(RoleManager))

	assert.False(t, Identity{SubjectID: "  "}.Authenticated())
}

func TestParseRoles(t *testing.T) {
	assert.Equal(t, []string{"Admin", "User"}, ParseRoles(" Admin, ,User,"))
	assert.Nil(t, ParseRoles(""))
	assert.Equal(t, "Admin,User", FormatRoles([]string{"Admin", "User"}))
}

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.False(t, FromContext(ctx).Authenticated())

	id := Identity{SubjectID: "user456", Roles: []string{RoleUser}}
	got := FromContext(WithIdentity(ctx, id))

	assert.Equal(t, id, got)
}
