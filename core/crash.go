package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finisher restores the terminal, tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

var (
	crashTerminal atomic.Pointer[Finisher]
	crashOut      io.Writer = os.Stderr
	crashExit               = os.Exit
)

// SetCrashTerminal registers the screen to restore before a crash report
// Pass nil after the screen is finalized
func SetCrashTerminal(f Finisher) {
	if f == nil {
		crashTerminal.Store(nil)
		return
	}
	crashTerminal.Store(&f)
}

// HandleCrash restores the terminal, prints the panic with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if f := crashTerminal.Swap(nil); f != nil {
		(*f).Fini()
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Recover is deferred at the top of the main goroutine
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash never leaves the terminal in raw mode
func Go(fn func()) {
	go func() {
		defer Recover()
		fn()
	}()
}

// Wrap adapts fn for errgroup.Group.Go with the same recovery
func Wrap(fn func() error) func() error {
	return func() error {
		defer Recover()
		return fn()
	}
}
