//go:build unit

package user_test

import (
	"testing"

	"boxoffice/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "staff@example.com", want: "staff@example.com"},
		{name: "surrounding whitespace is trimmed", input: "  staff@example.com  ", want: "staff@example.com"},
		{name: "missing at sign", input: "staff.example.com", wantErr: true},
		{name: "missing tld", input: "staff@example", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, user.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("1234567")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", p.Value())
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"staff", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("staff@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "hashed", user.RoleStaff)
	assert.True(t, u.IsActive())
	assert.Equal(t, user.RoleStaff, u.Role())
	assert.Equal(t, "staff@example.com", u.Email().Value())
	assert.Nil(t, u.LastLogin())
}
