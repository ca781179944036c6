// Command seqstat prints sliding-window statistics of numeric sequences.
//
// Usage:
//
//	seqstat [flags] [file]
//
// It reads one sample per line from the given file (or stdin) and
// prints the sliding-window average. With -correlate it instead prints
// the sliding cross-correlation against a second sequence.
//
// Samples are integer literals (decimal, 0x hex, 0b binary) or floats.
// With -hex each line is hex text and every decoded byte becomes one
// sample.
//
// Examples:
//
//	seqstat -window 16 samples.txt
//	seqstat -window 8 -correlate other.txt -normalized samples.txt
//	seqstat -hex dump.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-datautils/stats/sliding"
	"github.com/cwbudde/algo-datautils/variant"
)

func main() {
	window := flag.Int("window", 8, "window size in samples")
	correlate := flag.String("correlate", "", "second input file for sliding cross-correlation")
	normalized := flag.Bool("normalized", false, "normalize correlation by window L2 norms")
	hexIn := flag.Bool("hex", false, "treat each input line as hex text; each byte becomes a sample")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: seqstat [flags] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Prints sliding-window statistics of a numeric sequence.\n")
		fmt.Fprintf(os.Stderr, "Reads one sample per line from file or stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	path := ""
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	samples, err := readSamples(path, *hexIn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *correlate != "" {
		other, err := readSamples(*correlate, *hexIn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := printCorrelation(samples, other, *window, *normalized); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printAverages(samples, *window); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// readSamples loads one sample per line from path, or stdin when path
// is empty. Blank lines are skipped.
func readSamples(path string, hexIn bool) ([]float64, error) {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var samples []float64
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(text) == 0 {
			continue
		}

		if hexIn {
			v, err := variant.FromHexText(text)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			b, err := v.AsBytes()
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			for _, by := range b {
				samples = append(samples, float64(by))
			}
			continue
		}

		s, err := parseSample(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		samples = append(samples, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}

// parseSample accepts integer literals first (full grammar including
// 0x/0b prefixes), then falls back to floats.
func parseSample(text string) (float64, error) {
	if v, err := variant.Text(text).ParseInt(64, true); err == nil {
		n, err := v.AsInt()
		if err != nil {
			return 0, err
		}
		return float64(n), nil
	}

	return strconv.ParseFloat(text, 64)
}

func printAverages(samples []float64, window int) error {
	mean, err := sliding.Mean(samples)
	if err != nil {
		return err
	}
	avg, err := sliding.Average(samples, window)
	if err != nil {
		return err
	}

	fmt.Printf("samples: %d  mean: %.6g  window: %d\n\n", len(samples), mean, window)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Offset\tAverage\n")
	fmt.Fprintf(tw, "------\t-------\n")
	for i, v := range avg {
		fmt.Fprintf(tw, "%d\t%.6g\n", i, v)
	}

	return tw.Flush()
}

func printCorrelation(a, b []float64, window int, normalized bool) error {
	var opts []sliding.Option
	if normalized {
		opts = append(opts, sliding.WithNormalized())
	}

	corr, err := sliding.CrossCorrelate(a, b, window, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("samples: %d vs %d  window: %d  normalized: %t\n\n", len(a), len(b), window, normalized)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Offset\tCorrelation\n")
	fmt.Fprintf(tw, "------\t-----------\n")
	for i, v := range corr {
		fmt.Fprintf(tw, "%d\t%.6g\n", i, v)
	}

	return tw.Flush()
}
