// Package token holds the lexical atoms of the PSD literal notation:
// the keyword literals and the string quoting rule.
package token

// Keyword and bracket literals of the notation. These are a wire
// contract: emitted text must use exactly these spellings to stay
// readable by existing literal readers.
const (
	Null  = "$null"
	True  = "$true"
	False = "$false"

	OpenObject  = "@{"
	CloseObject = "}"
	OpenArray   = "@("
	CloseArray  = ")"

	EmptyObject = "@{}"
	EmptyArray  = "@()"
)

// Quote renders v as a single-quoted literal. The only escape is
// quote doubling: each ' in v becomes ''. Newlines and all other
// characters are embedded raw.
//
//	Quote("O'Reilly") == "'O''Reilly'"
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '\''
	for i := 0; i < len(v); i++ {
		c := v[i]
		d = append(d, c)
		if c == '\'' {
			d = append(d, '\'')
		}
	}
	d = append(d, '\'')
	return string(d)
}

// Escape doubles quotes without adding the surrounding quotes.
func Escape(v string) string {
	q := Quote(v)
	return q[1 : len(q)-1]
}
