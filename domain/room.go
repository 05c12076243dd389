package domain

import (
	"fmt"
	"question-lab/errors"
	"regexp"
)

// RoomID identifies a presentation room. It is embedded verbatim in storage keys,
// so the separator ':' is never allowed.
type RoomID string

var roomIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func (r RoomID) Validate() error {
	if !roomIDPattern.MatchString(string(r)) {
		return fmt.Errorf("%w: %q", errors.ErrInvalidRoomID, string(r))
	}
	return nil
}

func (r RoomID) String() string {
	return string(r)
}
