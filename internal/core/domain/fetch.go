package domain

// FetchStatus discriminates the outcome of a remote entity lookup.
type FetchStatus int

const (
	// FetchFailed means the lookup failed for a reason other than absence.
	FetchFailed FetchStatus = iota
	// FetchFound means the entity was returned.
	FetchFound
	// FetchNotFound means the upstream reported that the entity does not exist.
	FetchNotFound
)

// String returns the status name.
func (s FetchStatus) String() string {
	switch s {
	case FetchFound:
		return "found"
	case FetchNotFound:
		return "not found"
	default:
		return "failed"
	}
}

// FetchResult is the outcome of a single entity lookup.
type FetchResult struct {
	Status FetchStatus
	Entity Entity
	// Err carries the diagnostic for FetchNotFound and FetchFailed.
	Err error
}

// Found wraps a successfully fetched entity.
func Found(e Entity) FetchResult {
	return FetchResult{Status: FetchFound, Entity: e}
}

// NotFound reports a missing entity.
func NotFound(err error) FetchResult {
	return FetchResult{Status: FetchNotFound, Err: err}
}

// Failed reports a lookup failure.
func Failed(err error) FetchResult {
	return FetchResult{Status: FetchFailed, Err: err}
}
