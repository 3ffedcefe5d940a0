package cli

import (
	"io"
	"log"
)

// stdLogger adapts the standard library logger to generator.Logger. Debug
// lines are dropped unless verbose is set.
type stdLogger struct {
	l       *log.Logger
	verbose bool
}

func newStdLogger(w io.Writer, verbose bool) *stdLogger {
	return &stdLogger{l: log.New(w, "datagen: ", log.LstdFlags), verbose: verbose}
}

func (s *stdLogger) Debugf(format string, args ...any) {
	if s.verbose {
		s.l.Printf("DEBUG "+format, args...)
	}
}

func (s *stdLogger) Infof(format string, args ...any) {
	if s.verbose {
		s.l.Printf("INFO "+format, args...)
	}
}

func (s *stdLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN "+format, args...) }
func (s *stdLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }
