// Package config loads and validates the desired state for dbterra.
//
// The desired state lives in a single YAML file, dbt_cloud.yml by default:
//
//	account:
//	  id: 1234            # optional, overrides DBT_CLOUD_ACCOUNT_ID
//	environments:
//	  prod:
//	    id: {{ env "PROD_ENV_ID" }}
//	projects:
//	  analytics:
//	    id: 5678
//	    jobs:
//	      daily_run:
//	        environment: prod
//	        target: production
//	        schedule:
//	          cron: "0 3 * * *"
//	        steps:
//	          - dbt run
//
// # Templating
//
// Before parsing, the file is rendered with text/template and the sprig
// function map, so secrets and ids can come from the environment.
//
// # Validation
//
// Validate reports every problem it finds at once as ValidationErrors:
// missing targets and steps, unparsable cron expressions, non-positive
// thread counts and jobs whose display names collide within a project.
// LoadConfig wraps any failure in a ConfigurationError whose DetailedError
// is meant to be shown to the user as is.
//
// # Settings
//
// Credentials and the API host are read from DBT_CLOUD_ACCOUNT_ID,
// DBT_CLOUD_TOKEN and DBT_CLOUD_BASE_URL by LoadSettings.
//
// # Watching
//
// Watcher reports settled writes to the desired state file; `plan --watch`
// uses it to re-plan on every save.
package config
