//go:build unit

package user_test

import (
	"testing"

	"hotel-front/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    user.Role
		wantErr error
	}{
		{name: "upper case", input: "MANAGER", want: user.RoleManager},
		{name: "lower case from upstream", input: "employee", want: user.RoleEmployee},
		{name: "padded", input: "  guest ", want: user.RoleGuest},
		{name: "unknown", input: "admin", wantErr: user.ErrInvalidRole},
		{name: "empty", input: "", wantErr: user.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := user.NewRole(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, user.RoleManager.AtLeast(user.RoleEmployee))
	assert.True(t, user.RoleEmployee.AtLeast(user.RoleEmployee))
	assert.False(t, user.RoleGuest.AtLeast(user.RoleEmployee))
	assert.False(t, user.Role("OWNER").AtLeast(user.RoleGuest))
	assert.False(t, user.RoleManager.AtLeast(user.Role("OWNER")))
}

func TestNewCredentials(t *testing.T) {
	creds, err := user.NewCredentials(" jan.kowalski ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jan.kowalski", creds.Username().Value())
	assert.Equal(t, "secret", creds.Password().Value())

	_, err = user.NewCredentials("   ", "secret")
	assert.ErrorIs(t, err, user.ErrUsernameRequired)

	_, err = user.NewCredentials("jan", "")
	assert.ErrorIs(t, err, user.ErrPasswordRequired)
}
