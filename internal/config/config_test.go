package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "BOT_PASSWORD", "BOT_LOCALE",
		"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"SQLITE_PATH", "MIGRATIONS_PATH",
		"READER_WORD_CHARS", "FOREIGN_LANG", "NATIVE_LANG",
		"HEALTH_INTERVAL", "HEALTH_MAX_FAILURES",
	} {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		database DatabaseConfig
		expected string
	}{
		{
			name: "postgres",
			database: DatabaseConfig{
				Driver:   DriverPostgres,
				Host:     "localhost",
				Port:     "5432",
				User:     "testuser",
				Password: "testpass",
				Name:     "testdb",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable",
		},
		{
			name: "pgx uses the same keyword string",
			database: DatabaseConfig{
				Driver:   DriverPgx,
				Host:     "db",
				Port:     "6432",
				User:     "u",
				Password: "p",
				Name:     "n",
			},
			expected: "host=db port=6432 user=u password=p dbname=n sslmode=disable",
		},
		{
			name: "sqlite",
			database: DatabaseConfig{
				Driver:     DriverSQLite,
				SQLitePath: "/tmp/vocabulary.db",
			},
			expected: "/tmp/vocabulary.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Database: tt.database}
			assert.Equal(t, tt.expected, cfg.DSN())
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "thesaurus", cfg.Database.Name)
	assert.Equal(t, "thesaurus", cfg.Database.User)
	assert.Equal(t, "thesaurus.db", cfg.Database.SQLitePath)
	assert.Equal(t, "migrations", cfg.Database.MigrationsPath)
	assert.Equal(t, "-'’", cfg.Reader.WordChars)
	assert.Equal(t, 30*time.Second, cfg.Health.Interval)
	assert.Equal(t, 3, cfg.Health.MaxFailures)
	assert.Equal(t, "ru", cfg.BotLocale)
}

func TestLoad_SQLiteNeedsNoPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("SQLITE_PATH", "reader.db")
	t.Setenv("FOREIGN_LANG", "de")
	t.Setenv("NATIVE_LANG", "en")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "reader.db", cfg.DSN())
	assert.Equal(t, "de", cfg.Reader.ForeignLang)
	assert.Equal(t, "en", cfg.Reader.NativeLang)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		contains string
	}{
		{name: "missing db password", key: "DB_DRIVER", value: "pgx", contains: "DB_PASSWORD"},
		{name: "unknown driver", key: "DB_DRIVER", value: "mysql", contains: "DB_DRIVER"},
		{name: "bad interval", key: "HEALTH_INTERVAL", value: "soon", contains: "HEALTH_INTERVAL"},
		{name: "negative interval", key: "HEALTH_INTERVAL", value: "-5s", contains: "HEALTH_INTERVAL"},
		{name: "bad failure count", key: "HEALTH_MAX_FAILURES", value: "0", contains: "HEALTH_MAX_FAILURES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadBot_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name        string
		botToken    string
		botPassword string
		contains    string
	}{
		{name: "missing token", botToken: "", botPassword: "secret", contains: "BOT_TOKEN"},
		{name: "missing password", botToken: "token", botPassword: "", contains: "BOT_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DB_PASSWORD", "test_db_password")
			t.Setenv("BOT_TOKEN", tt.botToken)
			t.Setenv("BOT_PASSWORD", tt.botPassword)

			cfg, err := LoadBot()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadBot(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PASSWORD", "test_db_password")
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BOT_PASSWORD", "test_password")

	cfg, err := LoadBot()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "test_password", cfg.BotPassword)
}

func TestRead_OverrideBeforeValidate(t *testing.T) {
	clearEnv(t)

	cfg, err := Read()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = DriverSQLite
	assert.NoError(t, cfg.Validate())

	cfg.Database.SQLitePath = ""
	assert.Error(t, cfg.Validate())
}
