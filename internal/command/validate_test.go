package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlytix/distribution-service/internal/domain"
)

func validChangePassword() ChangePasswordCommand {
	return ChangePasswordCommand{
		UserID:          "u1",
		CurrentPassword: "Secure1!",
		NewPassword:     "Another2!",
		ChangedBy:       "u1",
	}
}

func TestChangePasswordValid(t *testing.T) {
	require.NoError(t, validChangePassword().Validate())
}

func TestChangePasswordFailFastOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ChangePasswordCommand)
		field   string
		message string
	}{
		{
			name:    "missing user id",
			mutate:  func(c *ChangePasswordCommand) { c.UserID = "" },
			field:   "user_id",
			message: "User ID is required",
		},
		{
			name:    "missing current password",
			mutate:  func(c *ChangePasswordCommand) { c.CurrentPassword = "" },
			field:   "current_password",
			message: "Current password is required",
		},
		{
			name:    "missing new password",
			mutate:  func(c *ChangePasswordCommand) { c.NewPassword = "" },
			field:   "new_password",
			message: "New password is required",
		},
		{
			name:    "missing changed by",
			mutate:  func(c *ChangePasswordCommand) { c.ChangedBy = "" },
			field:   "changed_by",
			message: "Changed by is required",
		},
		{
			name:    "whitespace current password",
			mutate:  func(c *ChangePasswordCommand) { c.CurrentPassword = "   " },
			field:   "current_password",
			message: "Current password cannot be empty",
		},
		{
			name:    "whitespace new password",
			mutate:  func(c *ChangePasswordCommand) { c.NewPassword = "\t  " },
			field:   "new_password",
			message: "New password cannot be empty",
		},
		{
			name: "new password equals current",
			mutate: func(c *ChangePasswordCommand) {
				c.CurrentPassword = "Secure1!"
				c.NewPassword = "Secure1!"
			},
			field:   "new_password",
			message: "New password must be different from current password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validChangePassword()
			tt.mutate(&cmd)

			err := cmd.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

// When several fields are invalid at once, the first rule in declared order
// wins.
func TestChangePasswordFirstViolationWins(t *testing.T) {
	err := ChangePasswordCommand{}.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "user_id", verr.Field)
	assert.Equal(t, "User ID is required", verr.Message)
}

func TestAuthenticateUserValid(t *testing.T) {
	cmd := AuthenticateUserCommand{Email: "ops@flowlytix.com", Password: "Secure1!"}
	require.NoError(t, cmd.Validate())

	cmd.RememberMe = true
	require.NoError(t, cmd.Validate())
}

func TestAuthenticateUserRules(t *testing.T) {
	tests := []struct {
		name    string
		cmd     AuthenticateUserCommand
		field   string
		message string
	}{
		{
			name:    "missing email",
			cmd:     AuthenticateUserCommand{Password: "Secure1!"},
			field:   "email",
			message: "Email is required",
		},
		{
			name:    "missing password",
			cmd:     AuthenticateUserCommand{Email: "ops@flowlytix.com"},
			field:   "password",
			message: "Password is required",
		},
		{
			// Whitespace-only email is a non-empty string, so the format
			// rule reports it, not the presence rule.
			name:    "whitespace email fails format",
			cmd:     AuthenticateUserCommand{Email: "   ", Password: "Secure1!"},
			field:   "email",
			message: "Invalid email format",
		},
		{
			name:    "malformed email",
			cmd:     AuthenticateUserCommand{Email: "not-an-email", Password: "Secure1!"},
			field:   "email",
			message: "Invalid email format",
		},
		{
			name:    "whitespace password",
			cmd:     AuthenticateUserCommand{Email: "ops@flowlytix.com", Password: "   "},
			field:   "password",
			message: "Password cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func validCreateUser() CreateUserCommand {
	return CreateUserCommand{
		Email:     "new.hire@flowlytix.com",
		Password:  "Secure1!",
		FirstName: "Amal",
		LastName:  "Perera",
		Role:      domain.RoleManager,
		CreatedBy: "admin-1",
	}
}

func TestCreateUserValid(t *testing.T) {
	require.NoError(t, validCreateUser().Validate())
}

func TestCreateUserAcceptsEveryRole(t *testing.T) {
	roles := []domain.Role{
		domain.RoleSuperAdmin,
		domain.RoleAdmin,
		domain.RoleManager,
		domain.RoleEmployee,
		domain.RoleViewer,
	}
	for _, role := range roles {
		cmd := validCreateUser()
		cmd.Role = role
		assert.NoError(t, cmd.Validate(), "role %s", role)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	cmd := validCreateUser()
	cmd.Role = "director"

	err := cmd.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "role", verr.Field)
	assert.Equal(t, "Invalid role", verr.Message)
}

func TestCreateUserRules(t *testing.T) {
	status := domain.UserStatus("unknown")

	tests := []struct {
		name    string
		mutate  func(*CreateUserCommand)
		field   string
		message string
	}{
		{
			name:    "missing email",
			mutate:  func(c *CreateUserCommand) { c.Email = "" },
			field:   "email",
			message: "Email is required",
		},
		{
			name:    "malformed email",
			mutate:  func(c *CreateUserCommand) { c.Email = "nope" },
			field:   "email",
			message: "Invalid email format",
		},
		{
			name:    "missing password",
			mutate:  func(c *CreateUserCommand) { c.Password = "" },
			field:   "password",
			message: "Password is required",
		},
		{
			name:    "missing first name",
			mutate:  func(c *CreateUserCommand) { c.FirstName = "" },
			field:   "first_name",
			message: "First name is required",
		},
		{
			name:    "missing last name",
			mutate:  func(c *CreateUserCommand) { c.LastName = "" },
			field:   "last_name",
			message: "Last name is required",
		},
		{
			name:    "missing role",
			mutate:  func(c *CreateUserCommand) { c.Role = "" },
			field:   "role",
			message: "Role is required",
		},
		{
			name:    "missing created by",
			mutate:  func(c *CreateUserCommand) { c.CreatedBy = "" },
			field:   "created_by",
			message: "Created by is required",
		},
		{
			name:    "invalid status",
			mutate:  func(c *CreateUserCommand) { c.Status = &status },
			field:   "status",
			message: "Invalid status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreateUser()
			tt.mutate(&cmd)

			err := cmd.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestCreateUserOmittedStatusIsValid(t *testing.T) {
	cmd := validCreateUser()
	cmd.Status = nil
	require.NoError(t, cmd.Validate())

	active := domain.UserStatusActive
	cmd.Status = &active
	require.NoError(t, cmd.Validate())
}

// Validators are pure: same input, same outcome, and the input is never
// mutated.
func TestValidateIsIdempotentAndNonMutating(t *testing.T) {
	cmd := validChangePassword()
	before := cmd

	err1 := cmd.Validate()
	err2 := cmd.Validate()
	assert.Equal(t, err1, err2)
	assert.Equal(t, before, cmd)

	bad := validCreateUser()
	bad.Role = "director"
	badBefore := bad

	first := bad.Validate()
	second := bad.Validate()
	assert.Equal(t, first, second)
	assert.Equal(t, badBefore, bad)
}
