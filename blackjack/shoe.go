package blackjack

import (
	"fmt"
	"math/rand"

	"blackjack-sim/card"
)

// Shoe 牌靴：decks 副牌洗匀后顺序发出，发过切牌位后在下一局前重洗。
type Shoe struct {
	decks int
	total int
	cut   int // remaining <= cut means the cut card has been dealt
	rng   *rand.Rand

	cards card.CardList
	fixed []card.Card // fixed deal order for tests, bypasses shuffling
}

// NewShoe builds a shuffled shoe of decks*52 cards. The rng is owned by
// the caller; a session shares one rng between its shoe and strategies.
func NewShoe(decks int, penetration float64, rng *rand.Rand) *Shoe {
	total := decks * len(card.Deck)
	s := &Shoe{
		decks: decks,
		total: total,
		cut:   cutPoint(total, penetration),
		rng:   rng,
	}
	s.Reset()
	return s
}

// NewShoeFromCards builds a shoe that deals the given cards front to back.
// Reset restores the same order, so deals stay predictable across reshuffles.
func NewShoeFromCards(cards []card.Card, penetration float64) (*Shoe, error) {
	if len(cards) == 0 {
		return nil, ErrConfig("fixed shoe needs at least one card")
	}
	for _, c := range cards {
		if c.Rank() == 0 {
			return nil, ErrConfig(fmt.Sprintf("invalid card 0x%02X in fixed shoe", byte(c)))
		}
	}
	s := &Shoe{
		total: len(cards),
		cut:   cutPoint(len(cards), penetration),
		fixed: append([]card.Card{}, cards...),
	}
	s.Reset()
	return s, nil
}

// Reset rebuilds the full stack and reshuffles.
func (s *Shoe) Reset() {
	if s.fixed != nil {
		// PopCard draws from the back, so load the fixed order reversed.
		stack := make([]card.Card, len(s.fixed))
		for i, c := range s.fixed {
			stack[len(stack)-1-i] = c
		}
		s.cards.Init(stack)
		return
	}

	stack := make([]card.Card, 0, s.total)
	for d := 0; d < s.decks; d++ {
		stack = append(stack, card.Deck...)
	}
	s.rng.Shuffle(len(stack), func(i, j int) { stack[i], stack[j] = stack[j], stack[i] })
	s.cards.Init(stack)
}

// Draw removes and returns the top card.
func (s *Shoe) Draw() (card.Card, error) {
	c := s.cards.PopCard()
	if c == card.CardInvalid {
		return card.CardInvalid, ErrShoeEmpty
	}
	return c, nil
}

func (s *Shoe) Remaining() int { return s.cards.Count() }

func (s *Shoe) Total() int { return s.total }

// NeedsReshuffle reports whether the cut card has been reached. Checked only
// between rounds; a round in progress always runs to completion.
func (s *Shoe) NeedsReshuffle() bool {
	return s.cards.Count() <= s.cut
}

func cutPoint(total int, penetration float64) int {
	return int(float64(total) * (1 - penetration))
}
