package validator

import (
	"strings"
	"unicode/utf8"
)

func CommentText(text string) bool {
	return strings.TrimSpace(text) != "" && utf8.RuneCountInString(text) <= 500
}

// CommentRating accepts whole-star ratings only; 0 means "not rated" and is
// rejected before anything is written.
func CommentRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
