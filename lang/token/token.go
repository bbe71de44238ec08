// Package token defines the token kinds and source location type shared by
// the tokenizer, parser and diagnostics of the vesper compiler.
package token

//nolint:revive
type Kind int8

const (
	Illegal Kind = iota

	Integer     // decimal digits, e.g. "42"
	Identifier  // letter/underscore then alnum/underscore; also carries keywords and bool literals
	Operator    // one of == != <= >= = < > + - * / %
	Punctuation // one of ( ) { } , ; :
	End         // synthetic end-of-input, never produced by the tokenizer itself

	// Whitespace and Comment name input the tokenizer recognizes but
	// consumes without ever emitting a token; no Token of either kind is
	// ever built, so the parser never sees one.
	Whitespace
	Comment
)

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

var kindNames = [...]string{
	Illegal:     "illegal",
	Integer:     "integer",
	Identifier:  "identifier",
	Operator:    "operator",
	Punctuation: "punctuation",
	End:         "end",
	Whitespace:  "whitespace",
	Comment:     "comment",
}

// Keywords recognized by the parser among Identifier tokens. The tokenizer
// does not distinguish them; it emits every letter/underscore run as an
// Identifier token and leaves keyword recognition to the parser, per the
// tokenizer's scope (it also never normalizes case).
var Keywords = map[string]bool{
	"if":    true,
	"then":  true,
	"else":  true,
	"while": true,
	"do":    true,
	"var":   true,
	"true":  true,
	"false": true,
	"and":   true,
	"or":    true,
	"not":   true,
	"Int":   true,
	"Bool":  true,
}

// Token is a single classified lexeme with its source location.
type Token struct {
	Text     string
	Kind     Kind
	Location Location
}

func (t Token) String() string {
	return t.Kind.String() + " " + quoteText(t.Text) + " at " + t.Location.String()
}

func quoteText(s string) string {
	if s == "" {
		return `""`
	}
	return "`" + s + "`"
}
