package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// EnvAccountID names the variable holding the dbt Cloud account id.
	EnvAccountID = "DBT_CLOUD_ACCOUNT_ID"
	// EnvToken names the variable holding the dbt Cloud API token.
	EnvToken = "DBT_CLOUD_TOKEN"
	// EnvBaseURL optionally overrides the dbt Cloud API host.
	EnvBaseURL = "DBT_CLOUD_BASE_URL"

	// DefaultBaseURL is the multi-tenant dbt Cloud host.
	DefaultBaseURL = "https://cloud.getdbt.com"
)

// Settings are the run-level values that do not live in dbt_cloud.yml.
type Settings struct {
	AccountID int64
	Token     string
	BaseURL   string
}

// osGetenv is a package variable so tests can substitute the environment.
var osGetenv = os.Getenv

// LoadSettings reads the run settings from the environment. An account id
// declared in the desired state takes precedence over DBT_CLOUD_ACCOUNT_ID.
// The token is only required when requireToken is set, which lets commands
// that never reach the API run without credentials.
func LoadSettings(root Root, requireToken bool) (Settings, error) {
	settings := Settings{
		Token:   strings.TrimSpace(osGetenv(EnvToken)),
		BaseURL: strings.TrimRight(strings.TrimSpace(osGetenv(EnvBaseURL)), "/"),
	}
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}

	if root.Account != nil && root.Account.ID > 0 {
		settings.AccountID = root.Account.ID
	} else {
		raw := strings.TrimSpace(osGetenv(EnvAccountID))
		if raw == "" {
			return Settings{}, settingsError(fmt.Sprintf("%s must be set", EnvAccountID),
				"export "+EnvAccountID+" or declare account.id in "+DefaultConfigFile)
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return Settings{}, settingsError(fmt.Sprintf("%s must be a positive number, got %q", EnvAccountID, raw), "")
		}
		settings.AccountID = id
	}

	if requireToken && settings.Token == "" {
		return Settings{}, settingsError(fmt.Sprintf("%s must be set", EnvToken),
			"create a service token in dbt Cloud and export it as "+EnvToken)
	}

	return settings, nil
}

func settingsError(message, suggestion string) ConfigurationError {
	ce := ConfigurationError{
		FileName:  "environment",
		ErrorType: "settings",
		Message:   message,
	}
	if suggestion != "" {
		ce.Suggestions = []string{suggestion}
	}
	return ce
}
