package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/vvka-141/casefix/internal/cli"
	"github.com/vvka-141/casefix/pkg/casefix"
)

func main() {
	os.Exit(run(cli.Execute, os.Stderr))
}

// run executes the command tree and returns the process exit code.
// A panic is reported on stderr with its stack and exits with ExitPanic.
func run(execute func() error, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "casefix: internal error: %v\n%s\n", r, debug.Stack())
			code = casefix.ExitPanic
		}
	}()

	if err := execute(); err != nil {
		return casefix.ExitCodeForError(err)
	}
	return casefix.ExitSuccess
}
