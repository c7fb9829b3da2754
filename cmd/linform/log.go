package main

import (
	"io"
	"log"
	"os"
)

var (
	logInfo *log.Logger
	logErr  *log.Logger
)

// initLoggers wires progress output to stdout and failures to stderr.
// Quiet mode drops the progress stream; errors always get through.
func initLoggers(quiet bool) {
	out := io.Writer(os.Stdout)
	if quiet {
		out = io.Discard
	}
	logInfo = log.New(out, "INFO ", log.Ldate|log.Ltime)
	logErr = log.New(os.Stderr, "ERROR ", log.Ldate|log.Ltime)
}
