package logger

// FormatError exposes the chain rendering for white-box tests.
func FormatError(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}
