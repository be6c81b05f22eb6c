package main

import (
	"os"

	"github.com/felixge/fgprof"
)

// startProfile starts an fgprof profile written to path and returns a
// function that finishes it. An empty path disables profiling.
func startProfile(path string) (stop func() error, err error) {
	if path == "" {
		return func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
