package main

import (
	"fmt"
	"io"

	"mad-life/internal/render"

	"github.com/pkg/errors"
)

// report prints err for the user and returns the process exit status.
// Display acquisition failures get the short window/renderer diagnostic
// first, with the platform detail underneath.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if render.IsStartupFailure(err) {
		fmt.Fprintf(w, "%v.\n", errors.Cause(err))
		fmt.Fprintf(w, "  %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "life: %v\n", err)
	return 1
}
