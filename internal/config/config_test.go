package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaigndash/internal/eventbus"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Second, cfg.Auth.ResendCooldown.Duration)
	assert.Equal(t, time.Second, cfg.Auth.Latency.Duration)
	assert.Equal(t, 1500*time.Millisecond, cfg.Auth.SignupLatency.Duration)
	assert.Equal(t, 400*time.Millisecond, cfg.UI.PageLoadDelay.Duration)
	assert.Equal(t, "30d", cfg.UI.DefaultTimeRange)
	assert.Equal(t, 10, cfg.Notifications.Max)
	assert.False(t, strings.HasPrefix(cfg.StorageDir, "~"), "home is expanded")
	assert.Equal(t, "000000", cfg.Credentials().Code)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cs := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.StorageDir = filepath.Join(t.TempDir(), "store")
	cfg.Auth.ResendCooldown = D(5 * time.Second)
	cfg.UI.DefaultTimeRange = "7d"
	cfg.UI.AltScreen = false
	require.NoError(t, cs.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, `resend_cooldown = ['"]5s['"]`, string(data))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cs := NewConfigService(filepath.Join(t.TempDir(), FileName))
	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = cs.LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`
storage_dir = "/tmp/cd-store"

[auth]
latency = "250ms"

[notifications]
max = 4
`), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cd-store", cfg.StorageDir)
	assert.Equal(t, 250*time.Millisecond, cfg.Auth.Latency.Duration)
	assert.Equal(t, 4, cfg.Notifications.Max)
	assert.Equal(t, DefaultConfig().Auth.DemoEmail, cfg.Auth.DemoEmail)
	assert.Equal(t, 30*time.Second, cfg.Auth.ResendCooldown.Duration)
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad duration": "[auth]\nlatency = \"soon\"\n",
		"bad range":    "[ui]\ndefault_time_range = \"1y\"\n",
		"bad otp":      "[auth]\notp_code = \"12ab\"\n",
		"bad email":    "[auth]\ndemo_email = \"nobody\"\n",
		"bad max":      "[notifications]\nmax = 0\n",
		"not toml":     "this is = = not toml",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := NewConfigService(path).Load()
			assert.Error(t, err)
		})
	}
}

func TestTildeExpansion(t *testing.T) {
	cs := NewConfigService("~/campaigndash-test/" + FileName)
	assert.False(t, strings.HasPrefix(cs.Path(), "~"))
	assert.True(t, strings.HasSuffix(cs.Path(), filepath.Join("campaigndash-test", FileName)))
}

func TestEventsPublished(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	loaded := make(chan string, 1)
	saved := make(chan string, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded <- e.(eventbus.ConfigLoadedEvent).Path
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		saved <- e.(eventbus.ConfigSavedEvent).Path
	})

	path := filepath.Join(t.TempDir(), FileName)
	cs := NewConfigServiceWithBus(path, bus)
	cfg, err := cs.Load()
	require.NoError(t, err)
	require.NoError(t, cs.Save(cfg))

	for _, ch := range []chan string{loaded, saved} {
		select {
		case got := <-ch:
			assert.Equal(t, path, got)
		case <-time.After(time.Second):
			t.Fatal("event not published")
		}
	}
}
