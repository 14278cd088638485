// SPDX-License-Identifier: MIT

package inflation

import "errors"

// ErrBadSize is returned when an inflation size vector has a non-positive
// entry.
var ErrBadSize = errors.New("inflation: size entries must be positive")

// ErrUnknownParty is returned when a party index or name does not belong to
// the inflation's party list.
var ErrUnknownParty = errors.New("inflation: unknown party")

// ErrBadPartyName is returned when a string does not parse as a valid
// inflation party name.
var ErrBadPartyName = errors.New("inflation: malformed party name")

// ErrIncompatibleDistribution is returned when the distribution's outcome
// count does not match the network the inflation was built for.
var ErrIncompatibleDistribution = errors.New("inflation: distribution incompatible with network")
