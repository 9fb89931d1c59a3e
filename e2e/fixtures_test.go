//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary home directory with a config file
// that keeps every simulated delay short
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir

	config := fmt.Sprintf(`storage_dir = %q
log_file = %q

[auth]
latency = "50ms"
signup_latency = "50ms"
resend_cooldown = "2s"

[ui]
page_load_delay = "50ms"
toast_duration = "1s"
`, tf.StorageDir(), filepath.Join(tmpDir, "campaigndash.log"))

	if err := os.WriteFile(tf.ConfigPath(), []byte(config), 0644); err != nil {
		return "", err
	}
	return tmpDir, nil
}

// ConfigPath is the config file inside the workspace
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}

// StorageDir is where the session keys live
func (tf *TUITestFramework) StorageDir() string {
	return filepath.Join(tf.workspace, "session")
}

// SignIn stores a session so the app starts on the dashboard. The disk
// store keeps one file per key.
func (tf *TUITestFramework) SignIn(email, name string) error {
	if tf.workspace == "" {
		return fmt.Errorf("workspace not created")
	}
	dir := tf.StorageDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	keys := map[string]string{
		"isAuthenticated": "true",
		"userEmail":       email,
		"userName":        name,
	}
	for k, v := range keys {
		if err := os.WriteFile(filepath.Join(dir, k), []byte(v), 0600); err != nil {
			return err
		}
	}
	return nil
}
