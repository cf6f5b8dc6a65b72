// Package logging provides a tiny abstraction over slog so downstream code can
// depend on a minimal interface (Logger) while allowing users to plug any
// structured logger. It also offers a richer HaggleLogger with contextual
// helpers (session, party, strategy) and domain specific logging helpers for
// decisions and outcomes.
package logging
