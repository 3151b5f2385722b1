package errors

import (
	"errors"
	"fmt"
)

func fatal(err error) error {
	if err == nil {
		return nil
	}
	if isFatal(err) {
		return err
	}
	return &FatalError{err}
}

func fatalf(format string, v ...interface{}) error {
	return &FatalError{fmt.Errorf(format, v...)}
}

func isFatal(err error) bool {
	var fatalError *FatalError
	return errors.As(err, &fatalError)
}
