package domain

import "time"

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "wodl.yaml"

	// DefaultBaseURL is the UpKeep API v2 root.
	DefaultBaseURL = "https://api.onupkeep.com/api/v2"

	// DefaultCacheDir is the directory holding the persisted entity cache.
	DefaultCacheDir = "upkeep-api-cache"

	// DefaultExportDir is the directory CSV exports are written to.
	DefaultExportDir = "upkeep-csv-exports"

	// DefaultWorkOrderLimit bounds the single work-order listing request.
	DefaultWorkOrderLimit = 5000

	// DefaultProgressEvery is the progress reporting cadence in records.
	DefaultProgressEvery = 100

	// DefaultLookupTimeout bounds a single entity lookup.
	DefaultLookupTimeout = 30 * time.Second

	// DefaultSeparator joins nested keys into column names.
	DefaultSeparator = "."

	// CacheFileExt is the extension of persisted cache entries.
	CacheFileExt = ".json"

	// ExportTimeLayout names export files.
	ExportTimeLayout = "2006-01-02_15-04-05"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
