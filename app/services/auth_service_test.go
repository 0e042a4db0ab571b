package services_test

import (
	"testing"

	"github.com/ecofinds/ecofinds/app/services"
	"github.com/ecofinds/ecofinds/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	user, err := svc.Register(services.RegisterInput{
		Email:    "Jane@Example.com",
		Username: "jane",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email, "emails are stored lowercased")
	assert.NotEqual(t, "correct horse", user.Password, "password must be hashed")

	token, logged, err := svc.Login("jane@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	_, err := svc.Register(services.RegisterInput{
		Email: "jane@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Register(services.RegisterInput{
		Email: "JANE@example.com", Password: "another pass",
	})
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	_, err := svc.Register(services.RegisterInput{
		Email: "not-an-email", Password: "short",
	})
	require.Error(t, err)

	ve, ok := services.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "password")
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	_, err := svc.Register(services.RegisterInput{
		Email: "jane@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, _, err = svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login("jane@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	jane, err := svc.Register(services.RegisterInput{
		Email: "jane@example.com", Password: "correct horse",
	})
	require.NoError(t, err)
	_, err = svc.Register(services.RegisterInput{
		Email: "john@example.com", Password: "another pass",
	})
	require.NoError(t, err)

	// Taking another account's email is a conflict.
	_, err = svc.UpdateProfile(jane.ID, services.ProfileInput{Email: "john@example.com"})
	assert.ErrorIs(t, err, services.ErrConflict)

	// Keeping your own email is fine, as is a partial update.
	updated, err := svc.UpdateProfile(jane.ID, services.ProfileInput{
		Username: "janed",
		Email:    "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "janed", updated.Username)
	assert.Equal(t, "jane@example.com", updated.Email)

	// A password change invalidates the old one.
	_, err = svc.UpdateProfile(jane.ID, services.ProfileInput{NewPassword: "brand new pass"})
	require.NoError(t, err)

	_, _, err = svc.Login("jane@example.com", "correct horse")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, _, err = svc.Login("jane@example.com", "brand new pass")
	assert.NoError(t, err)
}
