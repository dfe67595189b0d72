package pricing

import (
	"unicode"

	"github.com/efreitasn/minibourse/internal/domain"
)

// InitialLetterOrVowel doubles the unit price on buys and halves it on
// sells (floored, never below 1) when the first character of the company
// name or of the exchange name equals the configured letter
// (case-sensitive) or is a vowel in either case. Other trades leave the
// price unchanged.
type InitialLetterOrVowel struct {
	letter rune
}

// NewInitialLetterOrVowel creates the policy. The letter must be alphabetic.
func NewInitialLetterOrVowel(letter rune) (*InitialLetterOrVowel, error) {
	if !unicode.IsLetter(letter) {
		return nil, &domain.ValidationError{Message: "letter must be alphabetic"}
	}
	return &InitialLetterOrVowel{letter: letter}, nil
}

// OnBuy doubles the unit price when the quote matches.
func (p *InitialLetterOrVowel) OnBuy(q domain.Quote, quantity int64) int64 {
	if p.triggers(q) {
		return q.UnitPrice * 2
	}
	return q.UnitPrice
}

// OnSell halves the unit price when the quote matches.
func (p *InitialLetterOrVowel) OnSell(q domain.Quote, quantity int64) int64 {
	if p.triggers(q) {
		return floor(q.UnitPrice / 2)
	}
	return q.UnitPrice
}

func (p *InitialLetterOrVowel) triggers(q domain.Quote) bool {
	return p.matches(firstRune(q.Company)) || p.matches(firstRune(q.Exchange))
}

func (p *InitialLetterOrVowel) matches(r rune) bool {
	return r == p.letter || isVowel(r)
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
