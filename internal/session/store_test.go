package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_FreshInstallGeneratesDeviceID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := NewStore(path)
	require.NoError(t, err)

	assert.NotEmpty(t, s.DeviceID())
	assert.False(t, s.IsLoggedIn())
	assert.Nil(t, s.User())

	// the fresh session is persisted immediately
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := NewStore(path)
	require.NoError(t, err)

	user := &domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}
	require.NoError(t, s.SaveUser(user))
	require.NoError(t, s.SaveToken("tok-123"))

	reloaded, err := NewStore(path)
	require.NoError(t, err)

	got := reloaded.User()
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "tok-123", reloaded.Token())
	assert.Equal(t, s.DeviceID(), reloaded.DeviceID())
	assert.True(t, reloaded.IsLoggedIn())
}

func TestStore_ClearKeepsDeviceID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := NewStore(path)
	require.NoError(t, err)
	deviceID := s.DeviceID()

	require.NoError(t, s.SaveUser(&domain.User{ID: 7}))
	require.NoError(t, s.SaveToken("tok-123"))
	require.NoError(t, s.Clear())

	assert.False(t, s.IsLoggedIn())
	assert.Empty(t, s.Token())
	assert.Equal(t, deviceID, s.DeviceID())

	reloaded, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, deviceID, reloaded.DeviceID())
}

func TestStore_UserReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveUser(&domain.User{ID: 7, Username: "alice"}))

	got := s.User()
	got.Username = "mallory"

	assert.Equal(t, "alice", s.User().Username)
}

func TestStore_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewStore(path)
	require.Error(t, err)
}
