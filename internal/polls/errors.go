package polls

import "errors"

// NoChoiceMessage is shown when a vote arrives without a usable choice.
const NoChoiceMessage = "You didn't select a choice."

var (
	// ErrNotFound means the question does not exist, or is not visible yet
	// where the lookup is gated on publication.
	ErrNotFound = errors.New("question not found")
	// ErrChoiceNotFound means the choice is not one of the question's choices.
	ErrChoiceNotFound = errors.New("choice not found")
)

// ValidationError is a recoverable vote failure: the caller re-renders the
// question with Message instead of failing the request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func errNoChoice() error {
	return &ValidationError{Message: NoChoiceMessage}
}
