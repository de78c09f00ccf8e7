package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/address-parser-ar/pkg/addr"
)

// Interactive REPL: reads a line, parses it, prints the resulting
// AddressResult as JSON, exits 0 on EOF or ":quit".
func main() {
	parser := addr.New()
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	encoder := json.NewEncoder(os.Stdout)

	fmt.Fprintln(os.Stderr, "address-parser-ar repl — enter an address line, or :quit")
	for {
		fmt.Fprint(os.Stderr, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == ":quit" {
			break
		}
		if line == "" {
			continue
		}
		result := parser.Parse(ctx, line)
		if err := encoder.Encode(result); err != nil {
			fmt.Fprintln(os.Stderr, "encode error:", err)
		}
	}
	os.Exit(0)
}
