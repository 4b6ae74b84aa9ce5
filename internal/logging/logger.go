// Package logging declares the structured logger the server and client
// code log through, keeping the concrete backend swappable.
package logging

import "context"

// Logger logs structured records. Variadic args are alternating
// key/value pairs, as in:
//
//	log.Info(ctx, "listening", "addr", cfg.EndpointAddrHTTP)
type Logger interface {
	// Info records routine events such as served requests.
	Info(ctx context.Context, msg string, args ...any)

	// Warn records suspect but recoverable conditions, e.g. a rejected
	// bearer token.
	Warn(ctx context.Context, msg string, args ...any)

	// Error records failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that attaches the given key/value pairs to
	// every record it emits.
	With(args ...any) Logger
}
