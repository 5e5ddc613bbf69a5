package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrUnknownStrategy is returned when a strategy kind is not recognised.
	ErrUnknownStrategy = zerr.New("unknown replacement strategy, expected 'full', 'select' or 'fullName'")

	// ErrInvalidReuseMode is returned when the cache reuse mode is not recognised.
	ErrInvalidReuseMode = zerr.New("invalid cache reuse mode, expected 'ask', 'always' or 'never'")

	// ErrMissingCredentials is returned when no email or password could be obtained.
	ErrMissingCredentials = zerr.New("missing credentials")

	// ErrAuthFailed is returned when the upstream rejects the sign-in.
	ErrAuthFailed = zerr.New("authentication failed")

	// ErrLogoutFailed is returned when the session token could not be revoked.
	ErrLogoutFailed = zerr.New("failed to sign out")

	// ErrWorkOrdersFailed is returned when the work-order listing fails.
	ErrWorkOrdersFailed = zerr.New("failed to fetch work orders")

	// ErrAPIRequestFailed is returned when a request to the upstream API fails.
	ErrAPIRequestFailed = zerr.New("upstream API request failed")

	// ErrAPIParseFailed is returned when an upstream response cannot be decoded.
	ErrAPIParseFailed = zerr.New("failed to parse upstream API response")

	// ErrEntityNotFound is returned when the upstream reports a missing entity.
	ErrEntityNotFound = zerr.New("entity not found")

	// ErrEntityFetchFailed is returned when an entity lookup fails.
	ErrEntityFetchFailed = zerr.New("entity lookup failed")

	// ErrCacheReadFailed is returned when the persisted cache cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read entity cache")

	// ErrCacheWriteFailed is returned when the persisted cache cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write entity cache")

	// ErrCacheCreateFailed is returned when a cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create entity cache directory")

	// ErrCacheMarshalFailed is returned when an entity cannot be encoded.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cached entity")

	// ErrCacheUnmarshalFailed is returned when a cache entry cannot be decoded.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal cached entity")

	// ErrInvalidCacheKey is returned when an id cannot be used as a file name.
	ErrInvalidCacheKey = zerr.New("entity id is not a valid cache file name")

	// ErrExportFailed is returned when the CSV export cannot be written.
	ErrExportFailed = zerr.New("failed to export csv")

	// ErrPromptFailed is returned when the operator could not be asked.
	ErrPromptFailed = zerr.New("failed to read operator input")

	// ErrPromptAborted is returned when the operator interrupts a prompt.
	ErrPromptAborted = zerr.New("aborted by operator")
)
