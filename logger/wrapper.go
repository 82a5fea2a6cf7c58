package logger

import (
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// HandlePanic logs a recovered panic with its stack trace and re-raises it.
// Call it deferred at the top of long-running goroutines.
func HandlePanic(tmcLogger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	tmcLogger.Error().
		Caller().
		Str("error", fmt.Sprint(r)).
		Str("stack_trace", string(debug.Stack())).
		Msg("Program panicked")
	panic(r)
}
