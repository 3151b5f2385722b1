package errors

// FatalError marks a failure after which bootstrap cannot continue. Code that
// detects one returns it; only the top-level driver decides to terminate.
type FatalError struct {
	err error
}

// Fatal wraps err as a FatalError. A nil err yields nil.
func Fatal(err error) error {
	return fatal(err)
}

// Fatalf formats an error and wraps it as a FatalError.
func Fatalf(format string, v ...interface{}) error {
	return fatalf(format, v...)
}

// IsFatal returns true if err or any error it wraps is a FatalError.
func IsFatal(err error) bool {
	return isFatal(err)
}

func (e *FatalError) Error() string {
	return e.err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.err
}
