package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/truth-weaver/internal/apperror"
	"github.com/nguyentantai21042004/truth-weaver/internal/pipeline"
)

// Exit codes for different failure modes
const (
	ExitSuccess   = 0 // Report written
	ExitNoResults = 1 // Nothing to analyze, or every subject failed
	ExitError     = 2 // Configuration, input directory or persistence error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case apperror.Is(err, apperror.KindEmptyDirectory), errors.Is(err, pipeline.ErrNoSubjectsAnalyzed):
		return ExitNoResults
	default:
		return ExitError
	}
}
