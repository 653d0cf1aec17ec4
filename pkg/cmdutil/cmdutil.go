// Package cmdutil holds helpers shared by the command binaries.
package cmdutil

import (
	"os"
	"os/signal"
	"syscall"
)

// InterruptChan returns a channel that is closed on the first SIGINT or
// SIGTERM, so any number of goroutines can wait on it.
func InterruptChan() <-chan struct{} {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		<-sig
		signal.Stop(sig)
		close(done)
	}()
	return done
}
