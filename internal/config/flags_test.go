package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := parseFlags(fs, []string{
		"-a", "localhost:9000",
		"-d", "postgres://flags",
		"-token-sign-key", "flag-secret",
		"-token-duration", "168h",
		"-server-url", "http://flags:8080",
	})

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://flags", cfg.Storage.DB.DSN)
	assert.Equal(t, "flag-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 168*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "http://flags:8080", cfg.Client.ServerURL)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"localhost with port", "localhost:8080", false},
		{"ip with port", "127.0.0.1:9090", false},
		{"empty host", ":8080", false},
		{"missing port", "localhost", true},
		{"bad port", "localhost:zero", true},
		{"negative port", "localhost:-1", true},
		{"bad host", "not an ip:8080", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, a.String())
		})
	}
}

func TestNetAddress_String_Zero(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
