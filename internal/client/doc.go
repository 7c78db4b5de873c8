// Package client provides the stores a reconciliation reads remote jobs from
// and writes changes to.
//
// # Stores
//
// Both stores implement JobStore:
//
//   - DBTCloudClient: the dbt Cloud v2 API. Requests authenticate with a
//     service token through an oauth2 transport using the "Token" scheme,
//     and every request carries a fresh X-Request-Id.
//   - FilesystemClient: YAML files under a local directory, used for offline
//     plans and in tests.
//
// # Usage
//
//	store := client.NewDBTCloudClient(accountID, token,
//	    client.WithBaseURL("https://emea.dbt.com"),
//	    client.WithUserAgent("dbterra/1.0.0"),
//	)
//	remote, err := store.List(ctx, projectID)
//
// # Errors
//
// Unsuccessful API responses are returned as *APIError, carrying both the
// HTTP status and the status block of the response envelope. The filesystem
// store reports missing and conflicting jobs with the apimachinery NotFound
// and AlreadyExists errors, so callers can use errors.IsNotFound.
package client
