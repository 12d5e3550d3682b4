package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

var cli struct {
	verbose  bool
	inkscape string
	project  string
}

const usageText = `Convert SVG icons to mpv OSC Lua paths.

Usage:
  svgluapath [flags] [SVG_FILE ...]

Without arguments, every *.svg in the icon directory (default icons/)
is converted in lexicographic order. The generated Lua table is written
to stdout.

Flags:
`

func main() {
	log.SetFlags(0)

	flag.BoolVar(&cli.verbose, "v", false, "verbose operation")
	flag.StringVar(&cli.inkscape, "inkscape", "", "inkscape binary to use")
	flag.StringVar(&cli.project, "p", "", "project file")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, flag.Args()); err != nil {
		log.Fatal(DecorateText(err.Error(), ErrorMessage))
	}
}

func run(w io.Writer, args []string) error {
	project := DefaultProject
	if cli.project != "" {
		if err := loadjson(cli.project, &project); err != nil {
			return fmt.Errorf("Error loading project file %s: %w", cli.project, err)
		}
	}

	files := args
	if len(files) == 0 {
		names, err := globdir(project.IconDir, "*"+project.Ext)
		if err != nil {
			return fmt.Errorf("Error reading icon dir %s: %w", project.IconDir, err)
		}
		for _, n := range names {
			files = append(files, filepath.Join(project.IconDir, n))
		}
		slices.Sort(files)
	}

	ink, err := NewInkscape(cli.inkscape)
	if err != nil {
		return err
	}

	return print_table(w, ink, files)
}

func print_table(w io.Writer, conv converter, files []string) error {
	fmt.Fprintln(w, "local icons = {")

	for _, fn := range files {
		if err := print_icon(w, conv, fn); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "}")
	return nil
}

// converter produces the intermediate canvas-markup file for an SVG
// and reports its path.
type converter interface {
	Convert(svgfn string) (string, error)
}

func print_icon(w io.Writer, conv converter, fn string) error {
	fi, err := os.Stat(fn)
	if err != nil || fi.IsDir() {
		return fmt.Errorf("No such file: %s", fn)
	}

	if cli.verbose {
		fmt.Fprintf(os.Stderr, "Convert %s\n", fn)
	}

	htmlfn, err := conv.Convert(fn)
	if err != nil {
		return err
	}

	path, err := extract_paths(htmlfn)
	if err != nil {
		// keep the intermediate file for inspection
		return err
	}
	os.Remove(htmlfn)

	fmt.Fprintln(w, lua_entry(icon_name(fn), path))
	return nil
}

// lua_entry formats one table entry. The value is Lua source, so the
// backslashes of the ASS wrapper tags are doubled.
func lua_entry(name, path string) string {
	return fmt.Sprintf(`    %s = "{\\p1}%s{\\p0}",`, name, path)
}

func icon_name(fn string) string {
	base := filepath.Base(fn)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func loadjson(fn string, v interface{}) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	d := json.NewDecoder(f)
	return d.Decode(v)
}
