package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/scouting-system/editor"
	"github.com/Dosada05/scouting-system/repositories"
)

// Errors shared by the services and the HTTP error mapping.
var (
	ErrNotFound             = errors.New("requested resource not found")
	ErrValidationFailed     = errors.New("validation failed")
	ErrConfirmationRequired = errors.New("deletion must be confirmed")

	ErrPlayerNotFound     = errors.New("player not found")
	ErrVenueNotFound      = errors.New("venue not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrGameNotFound       = errors.New("game not found")

	ErrPlayerFieldsRequired       = errors.New("first name, last name, birthdate and nation are required")
	ErrInvalidBirthdate           = errors.New("birthdate must be YYYY-MM-DD or DD.MM.YYYY")
	ErrUnsupportedPhotoType       = errors.New("photo must be an image")
	ErrVenueNameRequired          = errors.New("venue name is required")
	ErrTournamentNameRequired     = errors.New("tournament name is required")
	ErrTournamentInvalidDate      = errors.New("tournament dates must be YYYY-MM-DD or DD.MM.YYYY")
	ErrTournamentInvalidDateRange = errors.New("tournament end date must not be before start date")
	ErrSeedEntityInvalid          = errors.New("seed entity must be players or venues")
	ErrSeedCountOutOfRange        = errors.New("seed count must be between 1 and 500")
	ErrVideoFileRequired          = errors.New("select a video file")
)

var notFoundErrors = []error{
	ErrNotFound, ErrPlayerNotFound, ErrVenueNotFound, ErrTournamentNotFound, ErrTeamNotFound, ErrGameNotFound,
}

var validationErrors = []error{
	ErrValidationFailed, ErrPlayerFieldsRequired, ErrInvalidBirthdate, ErrUnsupportedPhotoType,
	ErrVenueNameRequired, ErrTournamentNameRequired, ErrTournamentInvalidDate,
	ErrTournamentInvalidDateRange, ErrSeedEntityInvalid, ErrSeedCountOutOfRange, ErrVideoFileRequired,
}

func IsNotFound(err error) bool {
	return errorsIsAny(err, notFoundErrors)
}

// IsValidation reports whether err was caused by user input rather than by
// the backend.
func IsValidation(err error) bool {
	return errorsIsAny(err, validationErrors) || editor.IsValidation(err)
}

func errorsIsAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// UserMessage turns err into the one-line feedback shown after action failed.
func UserMessage(action string, err error) string {
	if err == nil {
		return ""
	}
	if code, ok := repositories.StatusCode(err); ok {
		return fmt.Sprintf("%s failed (status %d).", action, code)
	}
	if IsValidation(err) || IsNotFound(err) || errors.Is(err, ErrConfirmationRequired) {
		return sentence(rootMessage(err))
	}
	return action + " failed. Please try again."
}

// rootMessage returns the text of the first known sentinel in err's chain.
func rootMessage(err error) string {
	for _, group := range [][]error{validationErrors, notFoundErrors, {ErrConfirmationRequired}} {
		for _, target := range group {
			if errors.Is(err, target) {
				return target.Error()
			}
		}
	}
	if cause := editor.ValidationCause(err); cause != nil {
		return cause.Error()
	}
	return err.Error()
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToUpper(s[:1]) + s[1:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
