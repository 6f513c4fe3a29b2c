package search

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is one query word with its stopword flag.
type Token struct {
	Text    string
	Stopped bool
}

// Tokenize splits text on non-letter, non-digit boundaries and lowercases
// every token. Single-character tokens are kept; they matter as
// prepositions.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}

// TokenizeFiltered tokenizes text and marks stopwords without dropping them.
// A token is stopped when it appears in stop or is shorter than two
// characters; with a nil stop list nothing is marked.
func TokenizeFiltered(text string, stop []string) []Token {
	words := Tokenize(text)
	tokens := make([]Token, len(words))
	for i, w := range words {
		stopped := false
		if stop != nil {
			stopped = utf8.RuneCountInString(w) < 2 || slices.Contains(stop, w)
		}
		tokens[i] = Token{Text: w, Stopped: stopped}
	}
	return tokens
}

// stripStopped returns the texts of all non-stopped tokens.
func stripStopped(tokens []Token) []string {
	var words []string
	for _, tok := range tokens {
		if !tok.Stopped {
			words = append(words, tok.Text)
		}
	}
	return words
}

// normalize tokenizes and rejoins text into its canonical lowercase form.
func normalize(text string) string {
	return strings.Join(Tokenize(text), " ")
}
