// Package memory recycles order nodes between the book and the heap.
//
// The book hands an order back only after it has been unlinked from every
// queue and dropped from the registry, and all readers receive copies, so a
// released node can be reused immediately without epoch tracking.
package memory
