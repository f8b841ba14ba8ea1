package grove

import "strings"

// The branch grammar uses a five-symbol alphabet: 'F' steps forward, '+' and
// '-' turn the heading, '[' saves the cursor and descends one layer, ']'
// restores it. Any other symbol is carried through expansion untouched and
// ignored by the interpreter.
const (
	// Axiom is the start symbol every root grows from.
	Axiom = "F"

	// branchRule rewrites a forward step into two steps plus one branch
	// turned to each side. Every generation multiplies the F count by 8.
	branchRule = "FF-[-F+F+F]+[+F-F-F]"
)

// Expand rewrites axiom for the given number of generations and returns the
// resulting sentence. The output grows exponentially with iterations, so
// callers keep iterations small (profiles stay at 4 or below).
func Expand(axiom string, iterations int) string {
	sentence := axiom
	for i := 0; i < iterations; i++ {
		var b strings.Builder
		b.Grow(len(sentence) * len(branchRule))
		for _, sym := range sentence {
			if sym == 'F' {
				b.WriteString(branchRule)
			} else {
				b.WriteRune(sym)
			}
		}
		sentence = b.String()
	}
	return sentence
}
