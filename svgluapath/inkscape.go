package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

type Inkscape struct {
	bin string
}

func NewInkscape(bin string) (*Inkscape, error) {
	v, err := inkscapebin_checked(bin)
	if err != nil {
		return nil, err
	}

	return &Inkscape{bin: v}, nil
}

// Convert runs inkscape to produce the HTML canvas rendition of svgfn
// as a sibling file, and reports its path.
func (ink *Inkscape) Convert(svgfn string) (string, error) {
	htmlfn := strings.TrimSuffix(svgfn, filepath.Ext(svgfn)) + ".html"

	var stderr bytes.Buffer
	c := exec.Command(ink.bin, svgfn, "-o", htmlfn)
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return "", fmt.Errorf("Error converting %s: %w\n%s", svgfn, err, stderr.String())
	}

	return htmlfn, nil
}

func inkscapebin_checked(bin string) (string, error) {
	v, err := inkscapebin(bin)
	if err != nil {
		return "", fmt.Errorf("Cannot find inkscape: %w", err)
	}

	out, err := exec.Command(v, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("Error getting inkscape version: %w", err)
	}

	return checkversion(v, string(out))
}

// checkversion verifies the --version output names Inkscape 1.0+,
// needed for the -o export syntax.
func checkversion(bin, sout string) (string, error) {
	for _, line := range strings.SplitAfter(sout, "\n") {
		if strings.HasPrefix(line, "Inkscape") {
			if line < "Inkscape 1.0" {
				return "", fmt.Errorf("Needs inkscape version 1.0+, got %v", line)
			} else {
				return bin, nil
			}
		}
	}

	return "", fmt.Errorf("Can't recognize inkscape version: %v", sout)
}

func inkscapebin(bin string) (string, error) {
	if bin != "" {
		return bin, nil
	}

	if v := os.Getenv("SVGLUAPATH_INKSCAPE"); v != "" {
		return v, nil
	}

	return exec.LookPath("inkscape")
}
