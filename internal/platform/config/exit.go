package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Exitf writes a formatted error message prefixed with the program name to
// stderr and exits with code 1.
func Exitf(format string, args ...any) {
	writeExit(os.Stderr, filepath.Base(os.Args[0]), format, args...)
	os.Exit(1)
}

func writeExit(w io.Writer, program, format string, args ...any) {
	fmt.Fprintf(w, "%s: "+format+"\n", append([]any{program}, args...)...)
}
