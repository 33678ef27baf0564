package funcs

import (
	"fmt"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

func argError(fn, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if fn != "" {
		msg = fn + "() " + msg
	}
	return fmt.Errorf("%w: %s", errkind.ErrInvalidArguments, msg)
}
