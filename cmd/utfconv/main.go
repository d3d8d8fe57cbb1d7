package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	utfconv "github.com/flbdx/utf-conv"
)

func main() {
	var (
		from        = flag.String("from", "utf-8", "Source encoding (utf-8, utf-16le, utf-16be, utf-32le, utf-32be)")
		to          = flag.String("to", "utf-16le", "Target encoding")
		inFile      = flag.String("in", "", "Input file (default stdin)")
		outFile     = flag.String("out", "", "Output file (default stdout)")
		validate    = flag.Bool("validate", false, "Validate the input against the source encoding and exit")
		bench       = flag.Int("bench", 0, "Repeat the conversion N times and report timing")
		interactive = flag.Bool("i", false, "Interactive inspector TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		utfconv.SetLogger(l)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*from, *to, *inFile, *outFile, *validate, *bench); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseEncoding(name string) (utfconv.Encoding, error) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return utfconv.UTF8, nil
	case "utf-16le", "utf16le":
		return utfconv.UTF16LE, nil
	case "utf-16be", "utf16be":
		return utfconv.UTF16BE, nil
	case "utf-32le", "utf32le":
		return utfconv.UTF32LE, nil
	case "utf-32be", "utf32be":
		return utfconv.UTF32BE, nil
	}
	return 0, fmt.Errorf("unknown encoding %q", name)
}

func readInput(inFile string) ([]byte, error) {
	if inFile == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(inFile)
}

func run(fromName, toName, inFile, outFile string, validateOnly bool, bench int) error {
	src, err := parseEncoding(fromName)
	if err != nil {
		return err
	}

	data, err := readInput(inFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if validateOnly {
		consumed, scalars, err := src.Validate(data)
		if err != nil {
			return fmt.Errorf("%d valid bytes (%d scalar values): %w", consumed, scalars, err)
		}
		fmt.Printf("%s: %d bytes, %d scalar values\n", src, consumed, scalars)
		return nil
	}

	dst, err := parseEncoding(toName)
	if err != nil {
		return err
	}

	if bench > 0 {
		return runBench(src, dst, data, bench)
	}

	var buf utfconv.Buffer[byte]
	consumed, written, err := utfconv.ConvertBuffer(src, dst, data, &buf)
	if err != nil {
		return fmt.Errorf("after %d bytes: %w", consumed, err)
	}

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	} else if dst != utfconv.UTF8 && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "warning: writing raw %s to a terminal; consider -out\n", dst)
	}

	if _, err := out.Write(buf.Data[:written]); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func runBench(src, dst utfconv.Encoding, data []byte, runs int) error {
	// Warm the buffer once so the timed loop measures conversion, not
	// first-call allocation.
	var buf utfconv.Buffer[byte]
	if _, _, err := utfconv.ConvertBuffer(src, dst, data, &buf); err != nil {
		return err
	}

	start := time.Now()
	var written int
	for i := 0; i < runs; i++ {
		var err error
		_, written, err = utfconv.ConvertBuffer(src, dst, data, &buf)
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	perRun := elapsed / time.Duration(runs)
	mbps := float64(len(data)) / perRun.Seconds() / (1 << 20)
	fmt.Printf("%s -> %s: %d runs over %d bytes\n", src, dst, runs, len(data))
	fmt.Printf("  %v/run, %d bytes out, %.1f MiB/s\n", perRun, written, mbps)
	return nil
}
