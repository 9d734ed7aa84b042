package session

import (
	"context"
	"testing"
	"time"

	"github.com/go-shop-api/internal/domain"
	"github.com/go-shop-api/internal/infrastructure/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- mocks ---

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSessionStore struct{ mock.Mock }

func (m *mockSessionStore) Put(ctx context.Context, s *domain.Session) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if s, _ := args.Get(0).(*domain.Session); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSessionStore) GetByRefreshToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if s, _ := args.Get(0).(*domain.Session); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSessionStore) RotateRefreshToken(ctx context.Context, sessionID, newToken string, newExpiry int64) error {
	return m.Called(ctx, sessionID, newToken, newExpiry).Error(0)
}
func (m *mockSessionStore) Update(ctx context.Context, sessionID string, updates map[string]interface{}) error {
	return m.Called(ctx, sessionID, updates).Error(0)
}

type mockSigner struct{ mock.Mock }

func (m *mockSigner) Sign(userID, role, sessionID string) (string, error) {
	args := m.Called(userID, role, sessionID)
	return args.String(0), args.Error(1)
}

// --- helpers ---

func enabledUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		UserID:       "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Enable:       true,
	}
}

// --- Login tests ---

func TestLogin_HappyPath(t *testing.T) {
	us, ss, signer := &mockUserStore{}, &mockSessionStore{}, &mockSigner{}

	us.On("GetByUsername", mock.Anything, "alice").Return(enabledUser(t, "secret123"), nil)
	ss.On("Put", mock.Anything, mock.AnythingOfType("*domain.Session")).Return(nil)
	signer.On("Sign", "user-1", domain.RoleUser, mock.Anything).Return("bearer", nil)

	result, err := NewService(ss, us, signer, 30).Login(context.Background(), LoginRequest{Username: "alice", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "bearer", result.Bearer)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "alice", result.Session.User.Username)
	assert.True(t, result.Session.Enable)
}

func TestLogin_EmailFallback(t *testing.T) {
	us, ss, signer := &mockUserStore{}, &mockSessionStore{}, &mockSigner{}

	us.On("GetByUsername", mock.Anything, "alice@example.com").Return(nil, dynamo.ErrItemNotFound)
	us.On("GetByEmail", mock.Anything, "alice@example.com").Return(enabledUser(t, "secret123"), nil)
	ss.On("Put", mock.Anything, mock.Anything).Return(nil)
	signer.On("Sign", mock.Anything, mock.Anything, mock.Anything).Return("bearer", nil)

	result, err := NewService(ss, us, signer, 30).Login(context.Background(), LoginRequest{Username: "alice@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "bearer", result.Bearer)
}

func TestLogin_UnknownUser(t *testing.T) {
	us, ss, signer := &mockUserStore{}, &mockSessionStore{}, &mockSigner{}

	us.On("GetByUsername", mock.Anything, "ghost").Return(nil, dynamo.ErrItemNotFound)
	us.On("GetByEmail", mock.Anything, "ghost").Return(nil, dynamo.ErrItemNotFound)

	_, err := NewService(ss, us, signer, 30).Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})

	require.Error(t, err)
	ss.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	us, ss, signer := &mockUserStore{}, &mockSessionStore{}, &mockSigner{}

	us.On("GetByUsername", mock.Anything, "alice").Return(enabledUser(t, "secret123"), nil)

	_, err := NewService(ss, us, signer, 30).Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	ss.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestLogin_DisabledAccount(t *testing.T) {
	us, ss, signer := &mockUserStore{}, &mockSessionStore{}, &mockSigner{}

	u := enabledUser(t, "secret123")
	u.Enable = false
	us.On("GetByUsername", mock.Anything, "alice").Return(u, nil)

	_, err := NewService(ss, us, signer, 30).Login(context.Background(), LoginRequest{Username: "alice", Password: "secret123"})

	require.Error(t, err)
}

// --- Refresh tests ---

func TestRefresh_RotatesToken(t *testing.T) {
	us, ss, signer := &mockUserStore{}, &mockSessionStore{}, &mockSigner{}

	sess := &domain.Session{
		SessionID:        "sess-1",
		UserID:           "user-1",
		Enable:           true,
		RefreshToken:     "old-token",
		RefreshExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
	ss.On("GetByRefreshToken", mock.Anything, "old-token").Return(sess, nil)
	ss.On("RotateRefreshToken", mock.Anything, "sess-1", mock.Anything, mock.Anything).Return(nil)
	us.On("Get", mock.Anything, "user-1").Return(enabledUser(t, "x"), nil)
	signer.On("Sign", "user-1", domain.RoleUser, "sess-1").Return("new-bearer", nil)

	bearer, newToken, err := NewService(ss, us, signer, 30).Refresh(context.Background(), "old-token")

	require.NoError(t, err)
	assert.Equal(t, "new-bearer", bearer)
	assert.NotEmpty(t, newToken)
	assert.NotEqual(t, "old-token", newToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	us, ss, signer := &mockUserStore{}, &mockSessionStore{}, &mockSigner{}

	sess := &domain.Session{
		SessionID:        "sess-1",
		UserID:           "user-1",
		RefreshToken:     "stale",
		RefreshExpiresAt: time.Now().Add(-time.Hour).Unix(),
	}
	ss.On("GetByRefreshToken", mock.Anything, "stale").Return(sess, nil)

	_, _, err := NewService(ss, us, signer, 30).Refresh(context.Background(), "stale")

	require.Error(t, err)
	ss.AssertNotCalled(t, "RotateRefreshToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRefresh_UnknownToken(t *testing.T) {
	us, ss, signer := &mockUserStore{}, &mockSessionStore{}, &mockSigner{}

	ss.On("GetByRefreshToken", mock.Anything, "ghost").Return(nil, dynamo.ErrItemNotFound)

	_, _, err := NewService(ss, us, signer, 30).Refresh(context.Background(), "ghost")

	require.Error(t, err)
}

// --- GetCurrent / Logout tests ---

func TestGetCurrent_AttachesUser(t *testing.T) {
	us, ss, signer := &mockUserStore{}, &mockSessionStore{}, &mockSigner{}

	ss.On("Get", mock.Anything, "sess-1").Return(&domain.Session{SessionID: "sess-1", UserID: "user-1", Enable: true}, nil)
	us.On("Get", mock.Anything, "user-1").Return(enabledUser(t, "x"), nil)

	sess, err := NewService(ss, us, signer, 30).GetCurrent(context.Background(), "sess-1")

	require.NoError(t, err)
	require.NotNil(t, sess.User)
	assert.Equal(t, "alice", sess.User.Username)
}

func TestGetCurrent_DisabledSession(t *testing.T) {
	us, ss, signer := &mockUserStore{}, &mockSessionStore{}, &mockSigner{}

	ss.On("Get", mock.Anything, "sess-1").Return(&domain.Session{SessionID: "sess-1", Enable: false}, nil)

	_, err := NewService(ss, us, signer, 30).GetCurrent(context.Background(), "sess-1")

	require.Error(t, err)
}

func TestLogout_DisablesSession(t *testing.T) {
	us, ss, signer := &mockUserStore{}, &mockSessionStore{}, &mockSigner{}

	ss.On("Update", mock.Anything, "sess-1", map[string]interface{}{"enable": false}).Return(nil)

	err := NewService(ss, us, signer, 30).Logout(context.Background(), "sess-1")

	require.NoError(t, err)
	ss.AssertExpectations(t)
}
