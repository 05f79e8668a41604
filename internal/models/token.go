package models

// TokenKind defines the category of a token.
type TokenKind int

const (
	// TokenWord is a run of letters, digits, or other word characters.
	TokenWord TokenKind = iota
	// TokenWhitespace is a run of whitespace characters.
	TokenWhitespace
	// TokenPunctuation is a single punctuation character.
	TokenPunctuation
)

// String returns string representation of TokenKind
func (tk TokenKind) String() string {
	switch tk {
	case TokenWord:
		return "word"
	case TokenWhitespace:
		return "whitespace"
	case TokenPunctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Token is an atomic substring of the tokenized input. Concatenating all
// tokens in order reconstructs the source string exactly.
type Token struct {
	Kind TokenKind `json:"kind"`
	Text string    `json:"text"`
}
