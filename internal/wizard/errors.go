package wizard

import "errors"

// Sentinel errors returned by Reduce and the Selection setters.
var (
	ErrStepIncomplete  = errors.New("current step is not complete")
	ErrInitialStep     = errors.New("already at the first step")
	ErrTerminalStep    = errors.New("already at the last step")
	ErrRequestInFlight = errors.New("a request is already in flight")
	ErrStaleResponse   = errors.New("response belongs to a superseded request")
	ErrUnknownConcern  = errors.New("unknown concern")
	ErrUnknownQuestion = errors.New("unknown history question")
	ErrInvalidSkinType = errors.New("skin type must be oily or dry")
	ErrUnknownAction   = errors.New("unknown action")
)
