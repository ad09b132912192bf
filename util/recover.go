package util

import "fmt"

// PanicToError turns a value recovered from a panic into an error, keeping errors intact for errors.Is.
func PanicToError(recovered interface{}) error {
	switch value := recovered.(type) {
	case nil:
		return nil
	case error:
		return value
	case string:
		return fmt.Errorf("panic: %s", value)
	default:
		return fmt.Errorf("panic: %v", value)
	}
}
