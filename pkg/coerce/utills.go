package coerce

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCoercionError reports whether err carries a CoercionError anywhere in
// its chain.
func IsCoercionError(err error) bool {
	var ce *CoercionError
	return errors.As(err, &ce)
}

// AsCoercionError extracts the CoercionError from the chain of err.
func AsCoercionError(err error) (*CoercionError, bool) {
	var ce *CoercionError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
