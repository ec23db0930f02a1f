package plates

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when the calculator is called with values
// outside of its domain. Retrying with the same arguments will fail again.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
