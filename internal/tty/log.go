package tty

import (
	"io"
	"log"
	"os"
)

// RedirectLog sends the standard logger to the file at path while the
// screen owns the terminal, or discards it when the file cannot be opened.
// The returned func restores stderr.
func RedirectLog(path string) (restore func()) {
	prev := log.Writer()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}
}
