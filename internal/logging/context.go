package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every entry logged through ctx with the subsystem name,
// e.g. "bang-worker".
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithQuery tags every entry logged through ctx with the user query being
// ranked or resolved.
func WithQuery(ctx context.Context, query string) context.Context {
	return withField(ctx, "query", query)
}

func withField(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}
