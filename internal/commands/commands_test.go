package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaigndash/internal/app"
	"campaigndash/internal/config"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func tempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	body := fmt.Sprintf("storage_dir = %q\nlog_file = %q\n", filepath.Join(dir, "store"), filepath.Join(dir, "app.log"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRoutes(t *testing.T) {
	out := run(t, "routes")
	assert.Contains(t, out, "/contacts/{id}")
	assert.Contains(t, out, "public")
	assert.Contains(t, out, "coming soon")
}

func TestWhoamiAndLogout(t *testing.T) {
	path := tempConfig(t)
	assert.Contains(t, run(t, "--config", path, "whoami"), "Not signed in.")

	a, err := app.New(app.Options{ConfigPath: path})
	require.NoError(t, err)
	a.Session.Restore()
	a.Session.Login("ada@example.com", "Ada", "")
	a.Close()

	out := run(t, "--config", path, "whoami")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "Ada")

	assert.Contains(t, run(t, "--config", path, "logout"), "Signed out ada@example.com.")
	assert.Contains(t, run(t, "--config", path, "whoami"), "Not signed in.")
	assert.Contains(t, run(t, "--config", path, "logout"), "Nobody was signed in.")
}

func TestRejectsArgs(t *testing.T) {
	cmd := New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"routes", "extra"})
	assert.Error(t, cmd.Execute())
}
