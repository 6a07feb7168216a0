package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidReplacement is matched by every InvalidReplacementError.
var ErrInvalidReplacement = errors.New("invalid replacement")

// InvalidReplacementError reports a replacement whose group references do
// not fit the pattern.
type InvalidReplacementError struct {
	Replacement string
	Reason      string
}

func (e *InvalidReplacementError) Error() string {
	return fmt.Sprintf("invalid replacement %q: %s", e.Replacement, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidReplacement) succeed.
func (e *InvalidReplacementError) Is(target error) bool {
	return target == ErrInvalidReplacement
}

// replacementPart is either literal text or a group reference (index or name).
type replacementPart struct {
	text  string
	ref   string
	isRef bool
}

// parseReplacement splits replacement into literal text and group
// references:
//
//	\1, \12     group by index (at most two digits)
//	\g<name>    group by name, \g<3> by index
//	\\          a literal backslash
//
// Everything else, '$' included, is literal. A malformed \g< reference is
// kept as literal text and reported through the returned reason.
func parseReplacement(replacement string) ([]replacementPart, string) {
	var (
		parts   []replacementPart
		literal strings.Builder
		reason  string
	)

	flush := func() {
		if literal.Len() > 0 {
			parts = append(parts, replacementPart{text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(replacement); i++ {
		c := replacement[i]
		if c != '\\' || i+1 == len(replacement) {
			literal.WriteByte(c)
			continue
		}

		next := replacement[i+1]

		switch {
		case next == '\\':
			literal.WriteByte('\\')

			i++
		case isDigit(next):
			j := i + 1
			for j < len(replacement) && j < i+3 && isDigit(replacement[j]) {
				j++
			}

			flush()
			parts = append(parts, replacementPart{ref: replacement[i+1 : j], isRef: true})

			i = j - 1
		case next == 'g' && i+2 < len(replacement) && replacement[i+2] == '<':
			end := strings.IndexByte(replacement[i+3:], '>')
			if end <= 0 {
				if reason == "" {
					reason = "unterminated or empty \\g<> group reference"
				}

				literal.WriteByte(c)

				continue
			}

			flush()
			parts = append(parts, replacementPart{ref: replacement[i+3 : i+3+end], isRef: true})

			i += 3 + end
		default:
			literal.WriteByte(c)
		}
	}

	flush()

	return parts, reason
}

// TranslateReplacement converts a replacement into a regexp.Expand
// template. Group references become ${1} / ${name}; every other character,
// '$' included, is copied literally.
func TranslateReplacement(replacement string) string {
	if !strings.ContainsAny(replacement, `\$`) {
		return replacement
	}

	parts, _ := parseReplacement(replacement)

	var b strings.Builder

	for _, part := range parts {
		if part.isRef {
			b.WriteString("${" + part.ref + "}")
			continue
		}

		b.WriteString(escapeDollar(part.text))
	}

	return b.String()
}

// CheckReplacement reports an *InvalidReplacementError when replacement is
// malformed or references a group the pattern does not define.
func (p *Pattern) CheckReplacement(replacement string) error {
	parts, reason := parseReplacement(replacement)
	if reason != "" {
		return &InvalidReplacementError{Replacement: replacement, Reason: reason}
	}

	for _, part := range parts {
		if !part.isRef {
			continue
		}

		if n, err := strconv.Atoi(part.ref); err == nil {
			if n < 0 || n > p.re.NumSubexp() {
				return &InvalidReplacementError{
					Replacement: replacement,
					Reason:      fmt.Sprintf("invalid group reference %d (pattern has %d groups)", n, p.re.NumSubexp()),
				}
			}

			continue
		}

		if p.re.SubexpIndex(part.ref) < 0 {
			return &InvalidReplacementError{
				Replacement: replacement,
				Reason:      fmt.Sprintf("unknown group name %q", part.ref),
			}
		}
	}

	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
