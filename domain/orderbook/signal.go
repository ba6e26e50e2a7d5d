package orderbook

import "fmt"

type SignalKind uint8

const (
	// NoOperation: the order rests strictly behind the best price and
	// cannot cross.
	NoOperation SignalKind = iota
	// AtMarket: a market order joined its side's at-market queue.
	AtMarket
	// NewBest: a limit order became, or joined, the best level of its side.
	NewBest
)

// Signal is the classification insertion hands to the execution engine.
type Signal struct {
	Kind SignalKind
	Side Side
}

func (s Signal) Crosses() bool {
	return s.Kind == AtMarket || s.Kind == NewBest
}

func (s Signal) String() string {
	switch s.Kind {
	case AtMarket:
		return fmt.Sprintf("AtMarket(%s)", s.Side)
	case NewBest:
		return fmt.Sprintf("NewBest(%s)", s.Side)
	default:
		return "NoOperation"
	}
}
