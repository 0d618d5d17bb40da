package predicate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// Regex accepts strings that match the pattern in full. Panics at
// construction when the pattern does not compile.
func Regex(pattern string) Predicate[string] {
	rx := regexp.MustCompile("^(?:" + pattern + ")$")
	return NewWith(
		rx.MatchString,
		"regex",
		Static[string](fmt.Sprintf("expected value to match regex /%s/", pattern)),
	)
}

// EqualsFold accepts strings equal to want under Unicode case folding.
func EqualsFold(want string) Predicate[string] {
	fold := cases.Fold()
	folded := fold.String(want)
	return NewWith(
		func(x string) bool { return fold.String(x) == folded },
		"equals fold",
		Static[string](fmt.Sprintf("expected %q (ignoring case)", want)),
	)
}

// ValidUUID accepts strings in standard UUID format. Length and hyphen
// positions are checked before parsing to reject garbage cheaply.
func ValidUUID() Predicate[string] {
	return NewWith(
		func(x string) bool {
			if strings.TrimSpace(x) == "" {
				return false
			}
			if len(x) != 36 {
				return false
			}
			if x[8] != '-' || x[13] != '-' || x[18] != '-' || x[23] != '-' {
				return false
			}
			_, err := uuid.Parse(x)
			return err == nil
		},
		"uuid",
		Static[string]("expected a valid UUID"),
	)
}
