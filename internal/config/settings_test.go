package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	original := osGetenv
	osGetenv = func(key string) string { return env[key] }
	t.Cleanup(func() { osGetenv = original })
}

func TestLoadSettings_FromEnvironment(t *testing.T) {
	withEnv(t, map[string]string{
		EnvAccountID: "123",
		EnvToken:     "abc123",
	})

	settings, err := LoadSettings(Root{}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(123), settings.AccountID)
	assert.Equal(t, "abc123", settings.Token)
	assert.Equal(t, DefaultBaseURL, settings.BaseURL)
}

func TestLoadSettings_AccountFromConfigWins(t *testing.T) {
	withEnv(t, map[string]string{
		EnvAccountID: "123",
		EnvBaseURL:   "https://emea.dbt.com/",
	})

	settings, err := LoadSettings(Root{Account: &Account{ID: 999}}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(999), settings.AccountID)
	assert.Equal(t, "https://emea.dbt.com", settings.BaseURL)
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		requireToken bool
		message      string
	}{
		{name: "missing account", env: map[string]string{EnvToken: "t"}, requireToken: true, message: "DBT_CLOUD_ACCOUNT_ID must be set"},
		{name: "non numeric account", env: map[string]string{EnvAccountID: "abc"}, message: "must be a positive number"},
		{name: "missing token", env: map[string]string{EnvAccountID: "1"}, requireToken: true, message: "DBT_CLOUD_TOKEN must be set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, tt.env)

			_, err := LoadSettings(Root{}, tt.requireToken)
			require.Error(t, err)

			var ce ConfigurationError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, "settings", ce.ErrorType)
			assert.Contains(t, ce.Message, tt.message)
		})
	}
}

func TestLoadSettings_TokenOptional(t *testing.T) {
	withEnv(t, map[string]string{EnvAccountID: "1"})

	settings, err := LoadSettings(Root{}, false)
	require.NoError(t, err)
	assert.Empty(t, settings.Token)
}
