// Package translator converts compiler-style flag strings into structured
// link directives. It understands the attached (-L/path, -lname) and
// detached (-L path, -l name) flag forms; every other token is dropped, as
// only path and library flags are relevant to the link plan.
package translator

import "strings"

// scanState tracks how the next token must be interpreted.
type scanState int

const (
	scanDefault scanState = iota
	scanExpectLibrary
	scanExpectPath
)

// Translator converts a flag string into link directives.
type Translator interface {
	Translate(flags string) []Directive
}

type flagTranslator struct{}

// New creates a Translator for -L/-l style flag strings.
func New() Translator {
	return &flagTranslator{}
}

// Translate scans flags left to right and emits one directive per path or
// library reference, in token order. A trailing detached flag with no
// following token contributes nothing.
func (t *flagTranslator) Translate(flags string) []Directive {
	var out []Directive

	state := scanDefault
	for _, token := range strings.Fields(flags) {
		switch {
		case state == scanExpectLibrary:
			out = append(out, DynamicLibrary(token))
			state = scanDefault
		case state == scanExpectPath:
			out = append(out, SearchPath(token))
			state = scanDefault
		case token == "-l":
			state = scanExpectLibrary
		case token == "-L":
			state = scanExpectPath
		case strings.HasPrefix(token, "-L"):
			out = append(out, SearchPath(token[2:]))
		case strings.HasPrefix(token, "-l"):
			out = append(out, DynamicLibrary(token[2:]))
		default:
			// Unrecognized flag (-m64, -Wl,... and friends): not ours.
		}
	}
	return out
}
