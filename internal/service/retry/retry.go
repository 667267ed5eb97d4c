// Package retry re-runs creation transactions that lost a race on a unique
// serial or code.
package retry

import (
	"errors"
	"fmt"

	"github.com/BhaveshChowdary07/ptas-api/internal/domain"
)

// OnConflict calls fn up to attempts times while it fails with
// domain.ErrAlreadyExists. When every attempt collides the last error is
// returned wrapped in domain.ErrConflict. Other errors return immediately.
func OnConflict(attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for range attempts {
		err = fn()
		if err == nil || !errors.Is(err, domain.ErrAlreadyExists) {
			return err
		}
	}
	return fmt.Errorf("%w: gave up after %d attempts: %v", domain.ErrConflict, attempts, err)
}
