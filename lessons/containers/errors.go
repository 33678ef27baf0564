package containers

import (
	"fmt"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

func indexError(i, n int) error {
	return fmt.Errorf("%w: index %d for length %d", errkind.ErrIndex, i, n)
}

func keyError[K comparable](k K) error {
	return fmt.Errorf("%w: %s", errkind.ErrKey, Repr(k))
}
