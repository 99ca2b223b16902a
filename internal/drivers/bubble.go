package drivers

import "github.com/san-kum/algolab/internal/frame"

type bubblePhase uint8

const (
	bubbleCompare bubblePhase = iota
	bubbleSwap
	bubbleDone
	bubbleFinished
)

// Bubble repeatedly compares neighbours and swaps them when out of order.
// Pass i leaves the largest remaining value at index n-1-i.
type Bubble struct {
	lang    frame.Lang
	data    frame.Dataset
	n, i, j int
	phase   bubblePhase
	outcome Outcome
}

func NewBubble(lang frame.Lang) *Bubble {
	return &Bubble{lang: lang, phase: bubbleFinished, outcome: pending()}
}

func (b *Bubble) Name() string       { return "bubble" }
func (b *Bubble) Category() Category { return Sorting }
func (b *Bubble) Outcome() Outcome   { return b.outcome }

func (b *Bubble) Start(data frame.Dataset, _ int) {
	b.data, b.n, b.i, b.j = data, len(data), 0, 0
	b.outcome = pending()
	b.phase = bubbleCompare
	if b.n < 2 {
		b.phase = bubbleDone
	}
}

func (b *Bubble) roles() *frame.Roles {
	return frame.NewRoles(b.n).Range(b.n-b.i, b.n, frame.TagSorted)
}

func (b *Bubble) Next() (Emission, bool) {
	switch b.phase {
	case bubbleCompare:
		j := b.j
		em := emit(frame.KindCompare, b.data,
			b.roles().Mark(frame.TagCompare, j, j+1),
			b.lang.Format(frame.MsgBubbleCompare, b.data[j], b.data[j+1]), PauseStep)
		if b.data[j] > b.data[j+1] {
			b.phase = bubbleSwap
		} else {
			b.advance()
		}
		return em, true

	case bubbleSwap:
		j := b.j
		b.data[j], b.data[j+1] = b.data[j+1], b.data[j]
		em := emit(frame.KindSwap, b.data,
			b.roles().Mark(frame.TagSwap, j, j+1),
			b.lang.Format(frame.MsgBubbleSwap, b.data[j+1], b.data[j]), PauseStep)
		b.advance()
		return em, true

	case bubbleDone:
		b.phase = bubbleFinished
		b.outcome = Outcome{Status: StatusSorted, Index: -1}
		return done(b.lang, b.data), true
	}
	return Emission{}, false
}

func (b *Bubble) advance() {
	b.phase = bubbleCompare
	b.j++
	if b.j < b.n-1-b.i {
		return
	}
	b.j = 0
	b.i++
	if b.i >= b.n-1 {
		b.phase = bubbleDone
	}
}
