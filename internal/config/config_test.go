package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	var (
		addr = "localhost:8080"
		dsn  = "host=localhost user=postgres password=postgres dbname=postgres sslmode=disable"
		dir  = "migrations"
		orig = []string{"http://localhost:3000"}
	)

	tcases := []struct {
		name string
		addr string
		dsn  string
		dir  string
		orig []string
		err  bool
	}{
		{
			name: "valid config",
			addr: addr,
			dsn:  dsn,
			dir:  dir,
			orig: orig,
			err:  false,
		},
		{
			name: "empty address",
			addr: "",
			dsn:  dsn,
			dir:  dir,
			orig: orig,
			err:  true,
		},
		{
			name: "empty DSN",
			addr: addr,
			dsn:  "",
			dir:  dir,
			orig: orig,
			err:  true,
		},
		{
			name: "empty migrations directory",
			addr: addr,
			dsn:  dsn,
			dir:  "",
			orig: orig,
			err:  true,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			config, err := NewConfig(tc.addr, tc.dsn, tc.dir, tc.orig)
			if tc.err {
				assert.Error(t, err, "expected error for config: %s", tc.name)
				return
			}
			assert.NoError(t, err, "expected no error for config: %s", tc.name)

			assert.Equal(t, tc.addr, config.ServerAddr, "expected server address to match")
			assert.Equal(t, tc.dsn, config.DatabaseDSN, "expected database DSN to match")
			assert.Equal(t, tc.dir, config.MigrationsDir, "expected migrations directory to match")
			assert.Equal(t, tc.orig, config.AllowedOrigins, "expected allowed origins to match")
		})
	}
}

func TestEnvOr(t *testing.T) {
	t.Run("returns the variable's value when set", func(t *testing.T) {
		t.Setenv("MESSENGER_TEST_VAR", "from-env")
		assert.Equal(t, "from-env", EnvOr("MESSENGER_TEST_VAR", "fallback"))
	})

	t.Run("returns the fallback when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", EnvOr("MESSENGER_TEST_VAR_UNSET", "fallback"))
	})
}
