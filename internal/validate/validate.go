package validate

import (
	"regexp"
	"strings"
)

// FieldError mirrors the express-validator wire shape the API clients expect.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, f := range e {
		parts = append(parts, f.Param+": "+f.Msg)
	}
	return strings.Join(parts, "; ")
}

func Field(msg, param string) FieldError {
	return FieldError{Msg: msg, Param: param, Location: "body"}
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(s string) bool {
	return emailRe.MatchString(s)
}
