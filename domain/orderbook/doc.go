// Package orderbook implements a single-instrument limit order book with
// strict price-time priority.
//
// Each side keeps a dense price ladder indexed by tick offset from the best
// price, plus a FIFO queue of market orders. An order registry maps every
// live order id to its resting location so cancellation and fills unlink in
// constant time.
//
// An OrderBook is not safe for concurrent use. Callers serialise access.
package orderbook
