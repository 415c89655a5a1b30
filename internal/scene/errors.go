package scene

import "errors"

// Errors returned when parsing scripted input. Applying an action to a scene
// never fails.
var (
	// ErrUnknownAction indicates a script verb that is not recognised.
	ErrUnknownAction = errors.New("scene: unknown action")

	// ErrBadArgument indicates a recognised verb with a missing or malformed argument.
	ErrBadArgument = errors.New("scene: bad action argument")
)
