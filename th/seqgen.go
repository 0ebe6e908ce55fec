// Package th holds test helpers.
package th

import "math/rand"

// SeqGen produces deterministic uint sequences for randomized tests.
type SeqGen interface {
	Seed(value uint)
	Next() uint
	Reset()
}

const (
	SgRand = iota
	SgSeq
)

func NewSeqGen(sgt int) SeqGen {
	switch sgt {
	case SgRand:
		return &randSG{}
	case SgSeq:
		return &seqSG{}
	default:
		panic("invalid sequence generator type")
	}
}

type randSG struct {
	r *rand.Rand
}

func (g *randSG) Next() uint {
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	return uint(g.r.Uint64())
}

func (g *randSG) Reset() {
	g.r = rand.New(rand.NewSource(1))
}

func (g *randSG) Seed(value uint) {
	g.r = rand.New(rand.NewSource(int64(value)))
}

type seqSG struct {
	cur uint
}

func (g *seqSG) Next() uint {
	g.cur++
	return g.cur
}

func (g *seqSG) Reset() {
	g.cur = 0
}

func (g *seqSG) Seed(value uint) {
	g.cur = value
}
