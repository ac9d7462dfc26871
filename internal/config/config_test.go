package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	env, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "9446", env.Port)
	assert.Equal(t, "smartspend.db", env.DBPath)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("SMARTSPEND_PORT", "8080")
	t.Setenv("SMARTSPEND_DB_PATH", "/tmp/test.db")

	env, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "8080", env.Port)
	assert.Equal(t, "/tmp/test.db", env.DBPath)
}
