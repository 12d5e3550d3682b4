package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// numPat matches an integer or decimal number, fltPat only decimals.
// Only the canvas declaration carries bare integer values; geometry
// coordinates are always written with fixed decimal precision.
const (
	numPat = `(-?\d+\.?\d*)`
	fltPat = `(-?\d+\.\d+)`
)

var (
	canvasRe    = regexp.MustCompile(`^<canvas id='canvas' width='` + numPat + `' height='` + numPat + `'></canvas>`)
	transformRe = regexp.MustCompile(`^ctx\.transform\(.+`)
	moveToRe    = regexp.MustCompile(`^ctx\.moveTo\(` + fltPat + `, ` + fltPat + `\);`)
	lineToRe    = regexp.MustCompile(`^ctx\.lineTo\(` + fltPat + `, ` + fltPat + `\);`)
	bezierRe    = regexp.MustCompile(`^ctx\.bezierCurveTo\(` + fltPat + `, ` + fltPat + `, ` + fltPat + `, ` + fltPat + `, ` + fltPat + `, ` + fltPat + `\);`)
)

// extract_paths scans the intermediate canvas markup in fn and returns
// the space-joined path sequence in drawing order.
func extract_paths(fn string) (string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var paths []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if m := canvasRe.FindStringSubmatch(line); m != nil {
			// ASS alignment centering crops the drawn path itself.
			// Move to the viewbox corners first so the icon keeps
			// its position within the original bounding box.
			paths = append(paths, "m 0 0 m "+clean_num(m[1])+" "+clean_num(m[2]))
			continue
		}

		if transformRe.MatchString(line) {
			return "", fmt.Errorf("Cannot parse ctx.transform(): '%s'\nPlease ungroup path to remove the transformation", fn)
		}

		if m := moveToRe.FindStringSubmatch(line); m != nil {
			paths = append(paths, "m "+clean_num(m[1])+" "+clean_num(m[2]))
			continue
		}

		if m := lineToRe.FindStringSubmatch(line); m != nil {
			paths = append(paths, "l "+clean_num(m[1])+" "+clean_num(m[2]))
			continue
		}

		if m := bezierRe.FindStringSubmatch(line); m != nil {
			b := make([]string, 0, 7)
			b = append(b, "b")
			for _, n := range m[1:] {
				b = append(b, clean_num(n))
			}
			paths = append(paths, strings.Join(b, " "))
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	if cli.verbose {
		fmt.Fprintf(os.Stderr, "  %d path tokens\n", len(paths))
	}

	return strings.Join(paths, " "), nil
}

// clean_num strips formatting noise from the converter's fixed-precision
// decimal output: trailing zeros, then a trailing decimal point.
// Textual only, never numeric rounding; integer strings pass through
// unchanged so "100" stays "100" while "100.00" becomes "100".
func clean_num(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
