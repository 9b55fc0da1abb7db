package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 9090

[database]
host = "db.local"
port = 5432
user = "svc"
password = "secret"
dbname = "court_booking"
sslmode = "disable"
lock_timeout = 3

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = true
service_name = "court-booking-service"

[client_service]
url = "http://clients.local"

[pricing]
singleton_service_ids = [6, 8]

[migrations]
auto_apply = true
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, 3, cfg.Database.LockTimeout)
	assert.Equal(t, []int64{6, 8}, cfg.Pricing.SingletonServiceIDs)
	assert.True(t, cfg.Migrations.AutoApply)

	// дефолты
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 5, cfg.ClientService.Timeout)
}

func TestLoad_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=db.local port=5432 user=svc password=secret dbname=court_booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Run("no database host", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[database]
dbname = "court_booking"
[client_service]
url = "http://clients.local"
`))
		assert.Error(t, err)
	})

	t.Run("no client service url", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[database]
host = "db.local"
dbname = "court_booking"
`))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
