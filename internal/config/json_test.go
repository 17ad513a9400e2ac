package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {
			"token_sign_key": "json-secret",
			"token_issuer": "json-issuer",
			"token_duration": "168h"
		},
		"storage": {"db": {"dsn": "postgres://json"}},
		"server": {"http_address": ":7070", "request_timeout": "45s"},
		"client": {"server_url": "http://json:7070", "session_db": "sess.db"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 168*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, ":7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://json:7070", cfg.Client.ServerURL)
	assert.Equal(t, "sess.db", cfg.Client.SessionDBPath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeConfigFile(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_BadJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}
