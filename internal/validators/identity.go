package validators

import (
	"net/mail"
	"regexp"
	"strings"
)

var documentNumberRe = regexp.MustCompile(`^[0-9A-Za-z.-]{4,30}$`)

// IsEmailValid is a purely syntactic check. The app runs offline on a
// desktop, so no DNS lookups here.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}

func IsDocumentNumberValid(number string) bool {
	return documentNumberRe.MatchString(strings.TrimSpace(number))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
