// Package dataset loads transaction databases from basket-format sources.
//
// Basket format is the de-facto interchange format for itemset mining: one
// transaction per line, items separated by commas or whitespace. It is the
// loader collaborator of the mining core — the core itself never touches
// files.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// maxLineSize bounds a single transaction line (1 MiB).
const maxLineSize = 1 << 20

// ReadBasket parses basket-format data from r.
//
// Each non-empty line is one transaction. Items are separated by commas when
// the line contains any, otherwise by whitespace. Surrounding whitespace is
// trimmed from each item and empty items are dropped. Lines starting with
// '#' are comments. Duplicate items within a transaction are meaningless to
// the miner and are passed through unchanged.
func ReadBasket(r io.Reader) ([][]string, error) {
	var transactions [][]string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var fields []string
		if strings.Contains(text, ",") {
			fields = strings.Split(text, ",")
		} else {
			fields = strings.Fields(text)
		}

		transaction := make([]string, 0, len(fields))
		for _, f := range fields {
			if f = strings.TrimSpace(f); f != "" {
				transaction = append(transaction, f)
			}
		}
		if len(transaction) > 0 {
			transactions = append(transactions, transaction)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read basket line %d: %w", line+1, err)
	}

	return transactions, nil
}

// Open loads a basket file from disk. Files ending in .gz are decompressed
// transparently.
func Open(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open basket file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip basket file %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return ReadBasket(r)
}
