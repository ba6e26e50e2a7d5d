// Package service is the single write entry point of the engine. It
// sequences commands, logs them to the entry WAL, applies them to the
// order book and records the resulting executions in the outbox.
//
// Transports such as gRPC and the execution stream sit on top of it and
// never touch the book directly.
package service
