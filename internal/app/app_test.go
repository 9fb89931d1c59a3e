package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"campaigndash/internal/config"
	"campaigndash/internal/domain"
	"campaigndash/internal/session"
	"campaigndash/internal/storage"
)

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	store := filepath.Join(dir, "store")
	path := filepath.Join(dir, config.FileName)
	body := fmt.Sprintf("storage_dir = %q\nlog_file = %q\n", store, filepath.Join(dir, "app.log"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path, store
}

func TestNewWiresServices(t *testing.T) {
	path, store := writeConfig(t)
	a, err := New(Options{ConfigPath: path})
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, store, a.Config.StorageDir)
	assert.IsType(t, &storage.DiskStore{}, a.Store)
	assert.True(t, a.Session.IsLoading())

	m, ok := session.FromContext(a.Context(context.Background()))
	require.True(t, ok)
	assert.Same(t, a.Session, m)
}

func TestSessionSurvivesRestart(t *testing.T) {
	path, _ := writeConfig(t)

	first, err := New(Options{ConfigPath: path})
	require.NoError(t, err)
	first.Session.Restore()
	first.Session.Login("ada@example.com", "Ada", "")
	first.Close()

	second, err := New(Options{ConfigPath: path})
	require.NoError(t, err)
	defer second.Close()
	second.Session.Restore()
	require.True(t, second.Session.IsAuthenticated())
	assert.Equal(t, "Ada", second.Session.User().Name)
}

func TestLoginRecordsNotification(t *testing.T) {
	path, _ := writeConfig(t)
	a, err := New(Options{ConfigPath: path})
	require.NoError(t, err)
	defer a.Close()

	before := a.Center.Len()
	a.Session.Restore()
	a.Session.Login("ada@example.com", "Ada", "")
	require.Eventually(t, func() bool { return a.Center.Len() == min(before+1, a.Config.Notifications.Max) }, time.Second, 10*time.Millisecond)
	assert.Equal(t, domain.NotificationSuccess, a.Center.List()[0].Type)
}

func TestInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("[notifications]\nmax = 0\n"), 0644))
	_, err := New(Options{ConfigPath: path})
	assert.Error(t, err)
}

func TestOpenStoreFallsBackToUnavailable(t *testing.T) {
	assert.Equal(t, storage.Unavailable{}, OpenStore("", zap.NewNop()))

	// a regular file where the directory should be
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	assert.Equal(t, storage.Unavailable{}, OpenStore(filepath.Join(file, "store"), zap.NewNop()))
}
