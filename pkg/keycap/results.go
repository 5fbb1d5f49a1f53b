package keycap

import "errors"

var (
	ErrCancelled = errors.New("operation cancelled by user")
)

// KeyboardResult is the text composed before the user confirmed.
type KeyboardResult struct {
	Text string
}
