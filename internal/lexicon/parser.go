package lexicon

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/heartmarshall/rbmt-backend/internal/domain"
)

// format describes the delimited source layout.
type format struct {
	sourceColumn string
	targetColumn string
	comma        rune
}

// readFile opens path and parses it. An unreadable or absent source is
// reported as domain.ErrSourceMissing.
func readFile(path string, f format) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceMissing, path, err)
	}
	defer file.Close()

	b, err := parse(file, f)
	snap := b.snapshot(path, time.Now())
	if err != nil {
		return snap, fmt.Errorf("parse %s: %w", path, err)
	}
	return snap, nil
}

// parse reads a header row naming the source and target columns followed by
// data rows. Rows missing either column or holding an empty value after
// trimming are counted as skipped. A leading UTF-8 byte order mark is dropped.
//
// parse always returns a usable builder; the error reports an I/O failure
// that cut the read short.
func parse(r io.Reader, f format) (*builder, error) {
	b := newBuilder(0)

	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.Comma = f.comma
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return b, nil
		}
		return b, fmt.Errorf("read header: %w", err)
	}

	srcIdx := columnIndex(header, f.sourceColumn)
	dstIdx := columnIndex(header, f.targetColumn)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				b.skipped++
				continue
			}
			return b, fmt.Errorf("read row: %w", err)
		}

		if srcIdx < 0 || dstIdx < 0 || srcIdx >= len(record) || dstIdx >= len(record) {
			b.skipped++
			continue
		}

		b.add(record[srcIdx], record[dstIdx])
	}

	return b, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
