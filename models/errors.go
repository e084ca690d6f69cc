package models

import "errors"

// ErrInvalidArgument marks a malformed configuration or parameter. It aborts
// the whole run before any simulation starts and is never retried.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInsufficientBankroll marks a bet that the remaining bankroll cannot
// cover. It terminates the current session as a ruin event; the run
// continues with the next session.
var ErrInsufficientBankroll = errors.New("insufficient bankroll")
