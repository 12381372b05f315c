package validator

import "net/mail"

const minPasswordLength = 6

func Email(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func Password(password string) bool {
	return len(password) >= minPasswordLength
}
