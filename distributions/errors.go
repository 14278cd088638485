// SPDX-License-Identifier: MIT

package distributions

import "errors"

// ErrBadVisibility reports a visibility parameter outside [0, denom].
var ErrBadVisibility = errors.New("distributions: visibility out of range")

// ErrBadSplit reports an EJM split whose three shares don't sum to the
// given denominator.
var ErrBadSplit = errors.New("distributions: split shares do not sum to denom")
