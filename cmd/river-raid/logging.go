package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultLogDir = "logs"
	logFileName   = "river-raid.log"
	maxLogSize    = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to dir/river-raid.log when debug is set and discards it otherwise
// The terminal is owned by tcell, so nothing is ever logged to stdout or stderr
// Returns the open file for the caller to close, or nil
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if dir == "" {
		dir = defaultLogDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("river-raid_%s.log", time.Now().Format("20060102_150405")))
		// On failure keep appending to the oversized file
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("logging started: %s", path)
	return f
}
