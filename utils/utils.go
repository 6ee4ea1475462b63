package utils

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{DateLayout, "02.01.2006", time.RFC3339, "2006-01-02T15:04:05"}

// ParseDate accepts ISO dates, German-style DD.MM.YYYY and full timestamps.
// Only the calendar date is kept.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// NormalizeDate rewrites any accepted date to YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// ComputeAge returns the number of full years between birthdate and today.
// ok is false when birthdate is empty or unparsable.
func ComputeAge(birthdate string, today time.Time) (age int, ok bool) {
	if strings.TrimSpace(birthdate) == "" {
		return 0, false
	}
	dob, err := ParseDate(birthdate)
	if err != nil {
		return 0, false
	}
	age = today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age, true
}

// MakeID returns a fresh local identifier. The backend assigns the ids of
// persisted entities; local ids only key transient rows.
func MakeID() string {
	return uuid.NewString()
}

// PhotoDataURI encodes an uploaded image the way the backend stores photos.
func PhotoDataURI(contentType string, data []byte) string {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
