package editor

import "errors"

// Validation errors of the tournament editor forms. Their texts are shown to
// the user as-is.
var (
	ErrTeamNameRequired         = errors.New("team name is required")
	ErrNoParticipants           = errors.New("the tournament has no participants to put on a roster")
	ErrRowOutOfRange            = errors.New("roster row does not exist")
	ErrTeamARequired            = errors.New("select at least team A")
	ErrInvalidKickoff           = errors.New("invalid date or time")
	ErrKickoffOutOfRange        = errors.New("kickoff is outside the tournament dates")
	ErrEvaluationPlayerRequired = errors.New("select a player to evaluate")
	ErrNotParticipant           = errors.New("player does not participate in this tournament")
	ErrRatingOutOfRange         = errors.New("ratings must be between 1 and 5")
)

var validationErrors = []error{
	ErrTeamNameRequired, ErrNoParticipants, ErrRowOutOfRange, ErrTeamARequired,
	ErrInvalidKickoff, ErrKickoffOutOfRange, ErrEvaluationPlayerRequired,
	ErrNotParticipant, ErrRatingOutOfRange,
}

// ValidationCause returns the form error err wraps, or nil.
func ValidationCause(err error) error {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}

// IsValidation reports whether err is one of the editor's form errors.
func IsValidation(err error) bool {
	return ValidationCause(err) != nil
}
