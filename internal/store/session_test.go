package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candidate-tracker/internal/domain"
	"candidate-tracker/internal/store"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials set the session", func(t *testing.T) {
		backend := newFakeBackend()
		st, sessions := newTestStore(t, backend, nil)

		user, tokens, err := st.Login(ctx, domain.LoginInput{Email: "manager@example.com", Password: testPassword})
		require.NoError(t, err)

		assert.Equal(t, "Mara Manager", user.Name)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.Empty(t, tokens.RememberToken)

		claims, err := st.ValidateAccessToken(tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, domain.RoleManager, claims.Role)

		require.NotNil(t, sessions.current, "session persisted")
		assert.Equal(t, user.ID, sessions.current.ID)
		require.NotNil(t, st.CurrentUser())
		assert.Equal(t, user.ID, st.CurrentUser().ID)
	})

	t.Run("wrong password and unknown email fail alike", func(t *testing.T) {
		backend := newFakeBackend()
		st, _ := newTestStore(t, backend, nil)

		_, _, err := st.Login(ctx, domain.LoginInput{Email: "manager@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)

		_, _, err = st.Login(ctx, domain.LoginInput{Email: "ghost@example.com", Password: testPassword})
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)

		assert.Nil(t, st.CurrentUser())
	})

	t.Run("session persistence failure is not fatal", func(t *testing.T) {
		backend := newFakeBackend()
		st, sessions := newTestStore(t, backend, nil)
		sessions.saveErr = errors.New("redis down")

		user, tokens, err := st.Login(ctx, domain.LoginInput{Email: "admin@example.com", Password: testPassword})
		require.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotNil(t, st.CurrentUser())
	})

	t.Run("remember me issues an opaque token", func(t *testing.T) {
		backend := newFakeBackend()
		st, sessions := newTestStore(t, backend, nil)

		user, tokens, err := st.Login(ctx, domain.LoginInput{Email: "admin@example.com", Password: testPassword, RememberMe: true})
		require.NoError(t, err)
		require.NotEmpty(t, tokens.RememberToken)
		assert.NotContains(t, tokens.RememberToken, testPassword)
		assert.Equal(t, user.ID, sessions.remember[tokens.RememberToken])
	})
}

func TestLogoutAndRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("logout clears both copies", func(t *testing.T) {
		backend := newFakeBackend()
		st, sessions := newTestStore(t, backend, nil)
		loginAs(t, st, "admin@example.com")

		st.Logout(ctx)

		assert.Nil(t, st.CurrentUser())
		assert.Nil(t, sessions.current)
	})

	t.Run("restore picks up a persisted session", func(t *testing.T) {
		backend := newFakeBackend()
		st, sessions := newTestStore(t, backend, nil)
		logged := loginAs(t, st, "manager@example.com")

		// Same backend and session store, fresh process.
		st2 := store.New(backend.gateways(), sessions, nil, testConfig())
		require.NoError(t, st2.Load(ctx))

		restored, err := st2.Restore(ctx)
		require.NoError(t, err)
		require.NotNil(t, restored)
		assert.Equal(t, logged.ID, restored.ID)
		assert.Equal(t, logged.ID, st2.CurrentUser().ID)
	})

	t.Run("restore with no persisted session is a clean miss", func(t *testing.T) {
		backend := newFakeBackend()
		st, _ := newTestStore(t, backend, nil)

		restored, err := st.Restore(ctx)
		assert.NoError(t, err)
		assert.Nil(t, restored)
		assert.Nil(t, st.CurrentUser())
	})
}

func TestRestoreRemembered(t *testing.T) {
	ctx := context.Background()

	t.Run("token exchange restores the user", func(t *testing.T) {
		backend := newFakeBackend()
		st, sessions := newTestStore(t, backend, nil)

		logged, tokens, err := st.Login(ctx, domain.LoginInput{Email: "employee@example.com", Password: testPassword, RememberMe: true})
		require.NoError(t, err)
		st.Logout(ctx)

		st2 := store.New(backend.gateways(), sessions, nil, testConfig())
		require.NoError(t, st2.Load(ctx))

		restored, fresh, err := st2.RestoreRemembered(ctx, tokens.RememberToken)
		require.NoError(t, err)
		assert.Equal(t, logged.ID, restored.ID)
		assert.NotEmpty(t, fresh.AccessToken)
		assert.Equal(t, logged.ID, st2.CurrentUser().ID)
	})

	t.Run("unknown token", func(t *testing.T) {
		backend := newFakeBackend()
		st, _ := newTestStore(t, backend, nil)

		_, _, err := st.RestoreRemembered(ctx, "deadbeef")
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)
		assert.Nil(t, st.CurrentUser())
	})
}

func TestValidateAccessToken(t *testing.T) {
	backend := newFakeBackend()
	st, _ := newTestStore(t, backend, nil)

	_, err := st.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}
