// Package logging holds the zerolog helpers shared by every component.
package logging

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns a child of the global logger tagged with the component
// name under the "cmp" key.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// ComponentCtx is Component bound to ctx, so ContextHook can stamp the
// session id on every event the component writes.
func ComponentCtx(ctx context.Context, name string) zerolog.Logger {
	return log.With().Ctx(ctx).Str("cmp", name).Logger()
}
