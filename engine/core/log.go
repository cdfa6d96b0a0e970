package core

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-wide structured logger. Systems use it to report
// invariant violations -- cases the data model guarantees shouldn't arise
// but that get logged and contained rather than crashing the whole tick,
// per the engine's halt-the-offending-agent policy for production builds.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// HaltAgent logs an invariant violation tied to a specific entity and
// removes it from the world, containing the defect to one agent instead of
// the whole tick.
func HaltAgent(w *World, id EntityID, reason string) {
	Log.Error().
		Uint64("entity", uint64(id)).
		Str("reason", reason).
		Msg("halting agent after invariant violation")
	w.Destroy(id)
}
