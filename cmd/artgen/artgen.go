package main

// go run artgen.go -mode fixed -o a41.html
// go run artgen.go -mode random -n 800 -o a43.html -seed 265
// go run artgen.go -table -n 10 -config art.yaml

import(
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/skypies/routeart/svgart"
)

var ErrMissingArgument = errors.New("missing argument")

var(
	fMode string
	fNumShapes int
	fOutput string
	fTitle string
	fWidth int
	fHeight int
	fSeed int64
	fConfig string
	fTable bool
	fCheck bool
	fVerbosity int
)

func init() {
	flag.StringVar(&fMode, "mode", "random", "fixed (the hand-placed circles), or random")
	flag.IntVar(&fNumShapes, "n", 800, "how many random shapes to generate")
	flag.StringVar(&fOutput, "o", "", "output HTML file (default a41.html or a43.html, by mode)")
	flag.StringVar(&fTitle, "title", "My art", "page title")
	flag.IntVar(&fWidth, "width", 500, "canvas width")
	flag.IntVar(&fHeight, "height", 300, "canvas height")
	flag.Int64Var(&fSeed, "seed", 0, "random seed; 0 means seed from the clock")
	flag.StringVar(&fConfig, "config", "", "YAML art config; unset ranges keep their defaults")
	flag.BoolVar(&fTable, "table", false, "print a table of sampled shapes instead of writing HTML")
	flag.BoolVar(&fCheck, "check", false, "read the output back, and check every shape parses")
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
}

// {{{ checkArgs

func checkArgs() error {
	switch fMode {
	case "fixed":  if fOutput == "" { fOutput = "a41.html" }
	case "random": if fOutput == "" { fOutput = "a43.html" }
	default:
		return fmt.Errorf("%w: -mode must be fixed or random, not '%s'", ErrMissingArgument, fMode)
	}
	if fNumShapes < 0 { return fmt.Errorf("%w: -n must not be negative", ErrMissingArgument) }
	if fWidth <= 0 || fHeight <= 0 {
		return fmt.Errorf("%w: canvas must have a positive size", ErrMissingArgument)
	}
	if fSeed == 0 { fSeed = time.Now().UnixNano() }
	return nil
}

func loadConfig() (svgart.ArtConfig, error) {
	if fConfig == "" { return svgart.DefaultConfig(), nil }
	return svgart.LoadConfigFile(fConfig)
}

// }}}
// {{{ writeArt

var createDocument = svgart.Create

// writeArt writes the whole page. If any step fails the output file is removed.
func writeArt(f *svgart.Factory) error {
	doc,err := createDocument(fOutput, fTitle)
	if err != nil { return err }

	steps := []func() error{
		doc.OpenBody,
		func() error { return doc.OpenCanvas(fWidth, fHeight) },
	}
	if fMode == "fixed" {
		steps = append(steps, func() error { return svgart.AppendShapes(doc, svgart.FixedLayout()) })
	} else {
		steps = append(steps, func() error { return svgart.GenerateArt(doc, f, fNumShapes) })
	}
	steps = append(steps, doc.CloseCanvas, doc.CloseBody)

	for _,step := range steps {
		if err := step(); err != nil {
			doc.Close()
			os.Remove(fOutput)
			return err
		}
	}
	if err := doc.Close(); err != nil {
		os.Remove(fOutput)
		return err
	}
	return nil
}

// }}}
// {{{ checkOutput

// checkOutput reads the file back, and counts the shapes that parse.
func checkOutput(path string) (int, error) {
	file,err := os.Open(path)
	if err != nil { return 0, err }
	defer file.Close()

	n := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "<circle") || strings.HasPrefix(line, "<rect") ||
			strings.HasPrefix(line, "<ellipse") {
			if _,err := svgart.ParseSVG(line); err != nil { return n, err }
			n++
		}
	}
	return n, scanner.Err()
}

// }}}

func main() {
	flag.Parse()
	if err := checkArgs(); err != nil { log.Fatal(err) }

	config,err := loadConfig()
	if err != nil { log.Fatal(err) }
	if fVerbosity > 0 { fmt.Print(config) }

	f,err := svgart.NewSeededFactory(config, fSeed)
	if err != nil { log.Fatal(err) }

	if fTable {
		if err := svgart.WriteShapeTable(os.Stdout, f, fNumShapes); err != nil { log.Fatal(err) }
		return
	}

	if err := writeArt(f); err != nil { log.Fatal(err) }
	fmt.Printf("Wrote %s (seed %d)\n", fOutput, fSeed)
	if fVerbosity > 0 && fMode == "random" { fmt.Printf("%s\n", f) }

	if fCheck {
		n,err := checkOutput(fOutput)
		if err != nil { log.Fatal(err) }
		fmt.Printf("%s: %d shapes, all OK\n", fOutput, n)
	}
}
