package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

func TestGlobdir(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	for _, n := range []string{"b.svg", "a.svg", "notes.txt", "c.svgx"} {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0666); err != nil {
			t.Fatal(err)
		}
	}

	names, err := globdir(dir, "*.svg")
	if err != nil {
		t.Fatal(err)
	}
	slices.Sort(names)

	assert.Equal([]string{"a.svg", "b.svg"}, names)
}

func TestGlobdirBadPattern(t *testing.T) {
	_, err := globdir(t.TempDir(), "[")
	assert.Error(t, err)
}

func TestGlobdirMissingDir(t *testing.T) {
	_, err := globdir(filepath.Join(t.TempDir(), "nope"), "*.svg")
	assert.Error(t, err)
}
