package credentials

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AyushSingh012/Secret-App/internal/store"
)

func newService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewService(st, bcrypt.MinCost), st
}

func TestRegisterStoresDigestNotPlaintext(t *testing.T) {
	svc, st := newService(t)

	id, err := svc.Register(context.Background(), "alice@example.com", "pw123")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	u, err := st.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, store.CredentialLocal, u.Credential.Kind)
	assert.NotEqual(t, "pw123", u.Credential.Digest)
	assert.NoError(t, VerifyPassword(u.Credential.Digest, "pw123"))
}

func TestRegisterDuplicateKeepsFirstCredential(t *testing.T) {
	svc, st := newService(t)

	_, err := svc.Register(context.Background(), "alice@example.com", "first")
	require.NoError(t, err)

	before, err := st.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice@example.com", "second")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	after, err := st.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Credential.Digest, after.Credential.Digest)
}

func TestAuthenticateSuccess(t *testing.T) {
	svc, _ := newService(t)

	registered, err := svc.Register(context.Background(), "alice@example.com", "pw123")
	require.NoError(t, err)

	resolved, err := svc.Authenticate(context.Background(), "alice@example.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, registered, resolved)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), "alice@example.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "alice@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUserLooksLikeWrongPassword(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateExternalOnlyAccountRejected(t *testing.T) {
	svc, st := newService(t)

	_, err := st.Create(context.Background(), "oauth@example.com", store.ExternalOnlyCredential())
	require.NoError(t, err)

	// A provider-provisioned account has no usable local password, and
	// the response must be indistinguishable from a bad password.
	_, err = svc.Authenticate(context.Background(), "oauth@example.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEmailIsCaseSensitive(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), "Alice@example.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "alice@example.com", "pw123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
