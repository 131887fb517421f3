package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	MinUsernameLength = 3
)

// Errors is an ordered list of human-readable violation messages, one per
// violated field. Validators collect every violation instead of stopping at
// the first one, so the caller gets the complete correction list in a single
// round trip.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

// ValidateSignUp checks the shape of a sign-up payload.
func ValidateSignUp(username, avatar string) Errors {
	var errs Errors

	if username == "" {
		errs = append(errs, "username is required")
	} else if utf8.RuneCountInString(username) < MinUsernameLength {
		errs = append(errs, fmt.Sprintf("username must be at least %d characters long", MinUsernameLength))
	}

	if avatar == "" {
		errs = append(errs, "avatar is required")
	} else if !isValidURI(avatar) {
		errs = append(errs, "avatar must be a valid uri")
	}

	return errs
}

// ValidateTweet checks the shape of a tweet payload. The same rules apply to
// creation and update.
func ValidateTweet(username, tweet string) Errors {
	var errs Errors

	if username == "" {
		errs = append(errs, "username is required")
	}

	if tweet == "" {
		errs = append(errs, "tweet is required")
	}

	return errs
}

func isValidURI(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != ""
}
