// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the cyclic counter.

package cyclic

import "errors"

var (
	// ErrInvalidRange indicates a range whose minimum exceeds its maximum.
	ErrInvalidRange = errors.New("cyclic range min must be <= max")
)
