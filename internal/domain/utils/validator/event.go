package validator

import (
	"strings"
	"time"
	"unicode/utf8"
)

func EventTitle(title string) bool {
	return strings.TrimSpace(title) != "" && utf8.RuneCountInString(title) <= 100
}

func EventDescription(description string) bool {
	return strings.TrimSpace(description) != "" && utf8.RuneCountInString(description) <= 1000
}

func EventLocation(location string) bool {
	return strings.TrimSpace(location) != "" && utf8.RuneCountInString(location) <= 200
}

func EventDate(date time.Time) bool {
	return !date.IsZero()
}
