package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ciacob/go-shard/debug"
	"github.com/ciacob/go-shard/encode"
	"github.com/ciacob/go-shard/format"
	"github.com/ciacob/go-shard/shard"
)

// readInput reads path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// resolveFormat parses an explicit format name, or guesses from the file
// extension; binary is the default.
func resolveFormat(name, path string) (format.Format, error) {
	if name != "" {
		return format.ParseFormat(name)
	}
	ext := filepath.Ext(path)
	for _, f := range format.AllFormats() {
		if f.Suffix() == ext {
			return f, nil
		}
	}
	return format.Binary, nil
}

// loadTree reads and decodes one document.
func loadTree(path, formatName, fallback string) (*shard.Node, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	f, err := resolveFormat(formatName, path)
	if err != nil {
		return nil, err
	}
	if debug.Codec() {
		debug.Logf("read %d bytes of %s from %s\n", len(data), f, path)
	}
	opts := []encode.Option{encode.WithFormat(f)}
	if fallback != "" {
		opts = append(opts, encode.WithFallback(fallback))
	}
	n := shard.New()
	if err := encode.Unmarshal(n, data, opts...); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return n, nil
}

// writeOutput writes to path, or stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
