package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/address-parser-ar/internal/addrcache"
	"github.com/address-parser-ar/pkg/addr"
)

// Reads a newline-delimited file of addresses, times Parse across them with
// and without a warmed cache, reports throughput.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: bench <addresses-file>")
		os.Exit(1)
	}

	lines, err := readLines(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		os.Exit(1)
	}
	if len(lines) == 0 {
		fmt.Fprintln(os.Stderr, "no addresses to benchmark")
		os.Exit(1)
	}

	ctx := context.Background()

	cold := addr.New()
	coldElapsed := timeParseAll(ctx, cold, lines)
	fmt.Printf("uncached: %d addresses in %s (%.0f/s)\n", len(lines), coldElapsed, rate(len(lines), coldElapsed))

	cache, err := addrcache.NewLRUCache(len(lines) * 2)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cache init error:", err)
		os.Exit(1)
	}
	warm := addr.New(addr.WithCache(cache))
	timeParseAll(ctx, warm, lines) // warm the cache
	warmElapsed := timeParseAll(ctx, warm, lines)
	fmt.Printf("warmed cache: %d addresses in %s (%.0f/s)\n", len(lines), warmElapsed, rate(len(lines), warmElapsed))
}

func timeParseAll(ctx context.Context, p *addr.Parser, lines []string) time.Duration {
	start := time.Now()
	for _, line := range lines {
		p.Parse(ctx, line)
	}
	return time.Since(start)
}

func rate(n int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(n) / elapsed.Seconds()
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
