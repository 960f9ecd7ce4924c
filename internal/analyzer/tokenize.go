package analyzer

import (
	"unicode"

	"github.com/hanwenzhu/guwen/internal/corpus"
)

// Token is a unit produced by the scanner: either a known vocabulary term
// (greedy longest match against the corpus tables) or a single Han rune.
type Token struct {
	Text string
	Term bool // true when the token matched a corpus term
}

// tokenizer performs greedy longest-match scanning over the corpus
// vocabulary. Punctuation and whitespace are skipped entirely.
type tokenizer struct {
	terms  map[string]struct{}
	maxLen int // longest term length in runes
}

func newTokenizer(stats *corpus.Stats) *tokenizer {
	t := &tokenizer{terms: make(map[string]struct{})}
	for _, term := range stats.Terms() {
		t.terms[term] = struct{}{}
		if n := len([]rune(term)); n > t.maxLen {
			t.maxLen = n
		}
	}
	return t
}

// addTerms extends the scanner with additional matchable terms, used by the
// converter so its mapping keys tokenize as units.
func (t *tokenizer) addTerms(terms []string) {
	for _, term := range terms {
		t.terms[term] = struct{}{}
		if n := len([]rune(term)); n > t.maxLen {
			t.maxLen = n
		}
	}
}

// tokenize splits text into content tokens. At each position the longest
// known term wins; otherwise a single Han rune becomes its own token. Other
// runes (punctuation, latin, space) are dropped.
func (t *tokenizer) tokenize(text string) []Token {
	runes := []rune(text)
	var tokens []Token

	for i := 0; i < len(runes); {
		matched := false
		max := t.maxLen
		if rem := len(runes) - i; rem < max {
			max = rem
		}
		for n := max; n >= 2; n-- {
			cand := string(runes[i : i+n])
			if _, ok := t.terms[cand]; ok {
				tokens = append(tokens, Token{Text: cand, Term: true})
				i += n
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if r := runes[i]; unicode.Is(unicode.Han, r) {
			tokens = append(tokens, Token{Text: string(r)})
		}
		i++
	}
	return tokens
}
