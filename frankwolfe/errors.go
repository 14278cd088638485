// SPDX-License-Identifier: MIT

package frankwolfe

import "errors"

// ErrDimensionMismatch is returned when a memorized quovec's length does
// not match the engine's configured dimension.
var ErrDimensionMismatch = errors.New("frankwolfe: quovec dimension mismatch")

// ErrNoStoredEvents reports that no event has been memorized. Solve does not
// return it: with no stored events Solve returns a zero Solution.
var ErrNoStoredEvents = errors.New("frankwolfe: no stored events")
