package cmd

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Input opens a graph source: "-" for stdin, a file (gzip'd when it ends
// in .gz) or a directory whose .dot and .dot.gz files are read in name
// order.
func Input(path string) (reader io.Reader, closeall func(), err error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if stat.IsDir() {
		return InputDir(path)
	}
	return InputFile(path)
}

func InputFile(path string) (reader io.Reader, closeall func(), err error) {
	freader, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		greader, err := gzip.NewReader(freader)
		if err != nil {
			freader.Close()
			return nil, nil, err
		}
		return greader, func() {
			greader.Close()
			freader.Close()
		}, nil
	}
	return freader, func() {
		freader.Close()
	}, nil
}

func InputDir(dir string) (reader io.Reader, closeall func(), err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".dot") || strings.HasSuffix(name, ".dot.gz")) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	var closers []func()
	closeall = func() {
		for _, closer := range closers {
			closer()
		}
	}
	readers := make([]io.Reader, 0, len(names))
	for _, name := range names {
		r, closer, err := InputFile(filepath.Join(dir, name))
		if err != nil {
			closeall()
			return nil, nil, err
		}
		// digraphs from different files must not run together
		readers = append(readers, r, strings.NewReader("\n"))
		closers = append(closers, closer)
	}
	return io.MultiReader(readers...), closeall, nil
}

// Output creates path ("" or "-" for stdout), gzip'd when it ends in .gz.
func Output(path string) (writer io.Writer, closeall func() error, err error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gw := gzip.NewWriter(f)
		return gw, func() error {
			if err := gw.Close(); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}, nil
	}
	return f, f.Close, nil
}
