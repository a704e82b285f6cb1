package service

import "errors"

// Not-found sentinels. These are distinct from transport failures
// (*sleeper.APIError): callers recover differently from "the call failed"
// and "the entity is absent from the fetched data".
var (
	ErrUserNotFound   = errors.New("user not found in league")
	ErrRosterNotFound = errors.New("roster not found for user")
	ErrNoMatchup      = errors.New("no matchup for roster this week")
	ErrNoOpponent     = errors.New("no single opponent shares the matchup id")
	ErrNoDraft        = errors.New("league has no draft")
)
