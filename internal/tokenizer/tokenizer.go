// Package tokenizer splits plain text into word, whitespace, and punctuation
// tokens. Tokenization is total and lossless: concatenating the tokens in
// order reconstructs the input exactly, so a changed space is visible at the
// same granularity as a changed word.
package tokenizer

import (
	"unicode"

	"github.com/aleister1102/redline/internal/models"
)

// Tokenize converts text into an ordered token sequence. Word characters
// (letters, digits, underscore) and whitespace characters are grouped into
// runs; every other character becomes its own punctuation token.
func Tokenize(text string) []models.Token {
	if text == "" {
		return nil
	}

	tokens := make([]models.Token, 0, len(text)/4+1)
	runes := []rune(text)

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			j := i
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			tokens = append(tokens, models.Token{Kind: models.TokenWhitespace, Text: string(runes[i:j])})
			i = j
		case isWordRune(r):
			j := i
			for j < len(runes) && isWordRune(runes[j]) {
				j++
			}
			tokens = append(tokens, models.Token{Kind: models.TokenWord, Text: string(runes[i:j])})
			i = j
		default:
			tokens = append(tokens, models.Token{Kind: models.TokenPunctuation, Text: string(r)})
			i++
		}
	}

	return tokens
}

// Texts returns just the text of each token, in order.
func Texts(tokens []models.Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
