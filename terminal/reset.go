// Package terminal restores the controlling terminal after a crash
// tcell owns the screen during play, these helpers run only when it cannot clean up
package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

var resetSequence = [][]byte{
	[]byte("\x1b[?1003l"), // mouse motion
	[]byte("\x1b[?1002l"), // mouse drag
	[]byte("\x1b[?1000l"), // mouse click
	[]byte("\x1b[?1006l"), // SGR mouse
	[]byte("\x1b[?25h"),   // cursor show
	[]byte("\x1b[?1049l"), // alt screen exit
	[]byte("\x1b[0m"),
	[]byte("\x1b[?7h"), // auto-wrap
	[]byte("\x1bc"),    // RIS
}

// EmergencyReset writes the escape sequences that undo tcell's screen setup and restores cooked mode
func EmergencyReset(w io.Writer) {
	for _, seq := range resetSequence {
		w.Write(seq)
	}
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
	// Escape sequences alone do not restore termios
	resetTerminalMode()
}

// CrashHandler returns a recover target that resets the terminal, prints the panic and exits
// Output uses \r\n since the terminal may still be in raw mode
func CrashHandler(who string, out io.Writer) func(r any) {
	return func(r any) {
		EmergencyReset(os.Stdout)
		fmt.Fprintf(out, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", who, r)
		fmt.Fprintf(out, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
