package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: develop
  serviceName: monitoring
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
messaging:
  provider: nats
  subscriptions:
    register: device.register
    update: device.update
  nats:
    url: nats://localhost:4222
    ackWait: 30s
archive:
  driver: docstore
  collectionUrl: mem://chat_messages/id
`

func TestLoadWithEnv_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MESSAGING_NATS_URL", "nats://broker:4222")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "monitoring", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Messaging)
	assert.Equal(t, "nats", cfg.Messaging.Provider)
	require.NotNil(t, cfg.Messaging.NATS)
	assert.Equal(t, "nats://broker:4222", cfg.Messaging.NATS.URL)
	assert.Equal(t, 30*time.Second, cfg.Messaging.NATS.AckWait)
	require.NotNil(t, cfg.Archive)
	assert.Equal(t, "mem://chat_messages/id", cfg.Archive.CollectionURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestSubscriptionsConfig_ByIntent(t *testing.T) {
	subs := SubscriptionsConfig{Register: "device.register", Update: " ", Delete: "device.delete"}

	assert.Equal(t, map[string]string{
		"register": "device.register",
		"delete":   "device.delete",
	}, subs.ByIntent())
}
