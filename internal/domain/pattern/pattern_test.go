package pattern

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	open    = "["
	closing = "]"
)

func TestCompile_InvalidPattern(t *testing.T) {
	p, err := Compile("a(b")
	require.Error(t, err)
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, ErrInvalidPattern))

	var invalid *InvalidPatternError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "a(b", invalid.Expr)
	assert.Contains(t, err.Error(), `"a(b"`)
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("[") })
	assert.NotPanics(t, func() { MustCompile("o+") })
}

func TestPattern_HighlightMatches(t *testing.T) {
	tests := []struct {
		name string
		expr string
		text string
		want string
	}{
		{"single run", "o+", "foo.txt", "f[oo].txt"},
		{"multiple matches", "o", "foo.txt", "f[o][o].txt"},
		{"no match returns text", "z", "foo.txt", "foo.txt"},
		{"match at both ends", "^f|t$", "foo.txt", "[f]oo.tx[t]"},
		{"whole string", ".*", "abc", "[abc]"},
		{"unicode", "é", "café.txt", "caf[é].txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustCompile(tt.expr)
			assert.Equal(t, tt.want, p.HighlightMatches(tt.text, open, closing))
		})
	}
}

func TestPattern_HighlightMatches_StrippingMarkersRestoresText(t *testing.T) {
	const openMarker, closeMarker = "\033[41m", "\033[49m"

	texts := []string{"foo.txt", "bar", "", "o", "ooo.o", "notes", "a.b.c.d"}
	exprs := []string{"o", "o*", `\.`, "^", "$", "[a-z]+", "x?"}

	for _, expr := range exprs {
		p := MustCompile(expr)
		for _, text := range texts {
			out := p.HighlightMatches(text, openMarker, closeMarker)
			stripped := strings.ReplaceAll(strings.ReplaceAll(out, openMarker, ""), closeMarker, "")
			assert.Equal(t, text, stripped, "expr %q text %q", expr, text)
		}
	}
}

func TestPattern_HighlightSubstitution(t *testing.T) {
	tests := []struct {
		name        string
		expr        string
		replacement string
		text        string
		want        string
	}{
		{"replaces each match", "o", "0", "foo", "f[0][0]"},
		{"empty replacement", "o", "", "foo", "f[][]"},
		{"no match", "z", "0", "foo", "foo"},
		{"back reference", "(o+)", `<\1>`, "foo", "f[<oo>]"},
		{"dollar is literal", "(o+)", "<$1>", "foo", "f[<$1>]"},
		{"backslash back reference", `(\d+)`, `n\1`, "a12b", "a[n12]b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustCompile(tt.expr)
			assert.Equal(t, tt.want, p.HighlightSubstitution(tt.text, tt.replacement, open, closing))
		})
	}
}

func TestPattern_HighlightSubstitution_MarkersWithDollar(t *testing.T) {
	p := MustCompile("o")
	assert.Equal(t, "f$0$$0$", p.HighlightSubstitution("foo", "0", "$", "$"))
}

func TestPattern_HighlightSubstitution_AgreesWithReplace(t *testing.T) {
	cases := []struct{ expr, replacement, text string }{
		{"o", "0", "foo.txt"},
		{`\.`, "_", "a.b.c"},
		{"(a)(b)", `\2\1`, "abab"},
		{"^", "x", "name"},
	}

	for _, c := range cases {
		p := MustCompile(c.expr)
		assert.Equal(t, p.Replace(c.text, c.replacement), p.HighlightSubstitution(c.text, c.replacement, "", ""))
	}
}

func TestPackageLevelHelpers(t *testing.T) {
	got, err := HighlightMatches("o", "foo", open, closing)
	require.NoError(t, err)
	assert.Equal(t, "f[o][o]", got)

	got, err = HighlightSubstitution("o", "0", "foo", open, closing)
	require.NoError(t, err)
	assert.Equal(t, "f[0][0]", got)

	_, err = HighlightMatches("(", "foo", open, closing)
	require.ErrorIs(t, err, ErrInvalidPattern)

	_, err = HighlightSubstitution("(", "0", "foo", open, closing)
	require.ErrorIs(t, err, ErrInvalidPattern)
}

func TestPattern_Replace(t *testing.T) {
	p := MustCompile(`(?P<word>[a-z]+)(\d+)`)

	assert.Equal(t, "7-abc", p.Replace("abc7", `\2-\g<word>`))
	assert.Equal(t, "${2}-$word", p.Replace("abc7", "${2}-$word"))
	assert.Equal(t, "abc7", MustCompile("z").Replace("abc7", "q"))
	assert.Equal(t, "(?P<word>[a-z]+)(\\d+)", p.String())
	assert.True(t, p.MatchString("x1"))
	assert.False(t, p.MatchString("x"))
}

func TestTranslateReplacement(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`\1`, "${1}"},
		{`\12x`, "${12}x"},
		{`\123`, "${12}3"},
		{`\g<name>`, "${name}"},
		{`\g<>`, `\g<>`},
		{`\g<name`, `\g<name`},
		{`a\\b`, `a\b`},
		{`\n`, `\n`},
		{`trailing\`, `trailing\`},
		{"$1", "$$1"},
		{"cost_$USD", "cost_$$USD"},
		{`\1$`, "${1}$$"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateReplacement(tt.in))
		})
	}
}

func TestPattern_Replace_DollarIsLiteral(t *testing.T) {
	assert.Equal(t, "cost_$USD.txt", MustCompile("price").Replace("price.txt", "cost_$USD"))
	assert.Equal(t, "$1_x", MustCompile("(a)").Replace("a", "$1_x"))
	assert.Equal(t, "a$b", MustCompile("-").Replace("a-b", "$"))
}

func TestPattern_CheckReplacement(t *testing.T) {
	p := MustCompile(`(?P<year>\d{4})-(\d+)`)

	tests := []struct {
		name        string
		replacement string
		wantErr     bool
	}{
		{"plain text", "x", false},
		{"dollars are literal", "$3 ${nope}", false},
		{"whole match", `\0`, false},
		{"index in range", `\2-\1`, false},
		{"named group", `\g<year>`, false},
		{"named by index", `\g<2>`, false},
		{"escaped backslash", `\\3`, false},
		{"index out of range", `\3`, true},
		{"two digit index", `\12`, true},
		{"unknown name", `\g<month>`, true},
		{"negative index", `\g<-1>`, true},
		{"empty name", `\g<>`, true},
		{"unterminated name", `\g<year`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.CheckReplacement(tt.replacement)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidReplacement)
			assert.NotErrorIs(t, err, ErrInvalidPattern)

			var replErr *InvalidReplacementError
			require.ErrorAs(t, err, &replErr)
			assert.Equal(t, tt.replacement, replErr.Replacement)
		})
	}
}

func TestHighlightSubstitution_RejectsMissingGroup(t *testing.T) {
	_, err := HighlightSubstitution(`(\d+)`, `\3`, "IMG_12", open, closing)
	require.ErrorIs(t, err, ErrInvalidReplacement)
	assert.Contains(t, err.Error(), "invalid group reference 3")
}
