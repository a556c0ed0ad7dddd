package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "cfg.json", `{
		"app": {"target_name": "Spectrum"},
		"agent": {"public_key": "pub", "private_key": "priv"},
		"catalog": {"base_url": "http://catalog.local", "request_timeout": "30s"},
		"storage": {"db": {"dsn": "agent.db", "auto_migrate": false}},
		"server": {"http_address": "0.0.0.0:5000", "request_timeout": 1000000000},
		"adapter": {"http_address": "localhost:5000", "request_timeout": "2m"},
		"log": {"level": "debug", "file": "console.log"}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Spectrum", cfg.App.TargetName)
	assert.Equal(t, "pub", cfg.Agent.PublicKey)
	assert.Equal(t, "priv", cfg.Agent.PrivateKey)
	assert.Equal(t, 30*time.Second, cfg.Catalog.RequestTimeout)
	require.NotNil(t, cfg.Storage.DB.AutoMigrate)
	assert.False(t, *cfg.Storage.DB.AutoMigrate)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "console.log", cfg.Log.File)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "cfg.yml", `
agent:
  public_key: pub
  private_key: priv
server:
  http_address: 127.0.0.1:5000
  grpc_address: 127.0.0.1:5001
adapter:
  request_timeout: 45s
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "pub", cfg.Agent.PublicKey)
	assert.Equal(t, "127.0.0.1:5001", cfg.Server.GRPCAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Nil(t, cfg.Storage.DB.AutoMigrate)
}

func TestParseFile_Malformed(t *testing.T) {
	_, err := parseFile(writeTempConfig(t, "cfg.json", `{"app":`))
	assert.Error(t, err)

	_, err = parseFile(writeTempConfig(t, "cfg.yaml", "app: [unclosed"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h"`, want: time.Hour},
		{name: "number", input: `1000`, want: 1000},
		{name: "null", input: `null`, want: 0},
		{name: "bad string", input: `"tomorrow"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
