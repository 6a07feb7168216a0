// Package pattern wraps the regular expression dialect used for both matching
// and substitution, so that what is highlighted is exactly what gets renamed.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPattern is matched by every InvalidPatternError.
var ErrInvalidPattern = errors.New("invalid pattern")

// InvalidPatternError reports an expression that failed to compile.
type InvalidPatternError struct {
	Expr string
	Err  error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Expr, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidPattern) succeed.
func (e *InvalidPatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// Pattern is a compiled search expression.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// Compile parses expr. Errors are always *InvalidPatternError.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &InvalidPatternError{Expr: expr, Err: err}
	}

	return &Pattern{expr: expr, re: re}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}

	return p
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.expr
}

// MatchString reports whether text contains any match.
func (p *Pattern) MatchString(text string) bool {
	return p.re.MatchString(text)
}

// Replace substitutes every match in text. Back-references follow
// TranslateReplacement; callers validate them first with CheckReplacement.
func (p *Pattern) Replace(text, replacement string) string {
	return p.re.ReplaceAllString(text, TranslateReplacement(replacement))
}

// HighlightMatches wraps every non-overlapping match with the markers and
// leaves the rest of text untouched.
func (p *Pattern) HighlightMatches(text, open, closing string) string {
	matches := p.re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder

	prevEnd := 0

	for _, loc := range matches {
		b.WriteString(text[prevEnd:loc[0]])
		b.WriteString(open)
		b.WriteString(text[loc[0]:loc[1]])
		b.WriteString(closing)

		prevEnd = loc[1]
	}

	b.WriteString(text[prevEnd:])

	return b.String()
}

// HighlightSubstitution performs the same substitution as Replace, wrapping
// only the inserted text with the markers.
func (p *Pattern) HighlightSubstitution(text, replacement, open, closing string) string {
	template := escapeDollar(open) + TranslateReplacement(replacement) + escapeDollar(closing)

	return p.re.ReplaceAllString(text, template)
}

// HighlightMatches compiles expr and highlights its matches in text.
func HighlightMatches(expr, text, open, closing string) (string, error) {
	p, err := Compile(expr)
	if err != nil {
		return "", err
	}

	return p.HighlightMatches(text, open, closing), nil
}

// HighlightSubstitution compiles expr, checks replacement against it and
// highlights the substituted text.
func HighlightSubstitution(expr, replacement, text, open, closing string) (string, error) {
	p, err := Compile(expr)
	if err != nil {
		return "", err
	}

	if err := p.CheckReplacement(replacement); err != nil {
		return "", err
	}

	return p.HighlightSubstitution(text, replacement, open, closing), nil
}

func escapeDollar(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
