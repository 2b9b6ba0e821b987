package lib

import "fmt"

// WrapError joins parent and child so that errors.Is matches both of them
func WrapError(parent error, child error) error {
	return fmt.Errorf("%w: %w", parent, child)
}
