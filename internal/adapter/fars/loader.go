// Package fars reads FARS accident files from disk.
package fars

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/fars-accident-service/internal/domain"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	bzip2Magic = []byte("BZh")
	gzipMagic  = []byte{0x1f, 0x8b}
	zstdMagic  = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Loader parses accident files into domain datasets.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Read opens path, decompresses it if needed and parses it. A path that does
// not exist yields an error wrapping domain.ErrFileNotFound.
func (l *Loader) Read(ctx context.Context, path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file '%s' does not exist: %w", path, domain.ErrFileNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("file '%s' is a directory: %w", path, domain.ErrFileNotFound)
	}

	r, closeFn, err := decompress(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	defer closeFn()

	d, err := parse(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d.Path = path

	l.logger.Debug("accident file loaded", "path", path, "rows", d.Len())
	return d, nil
}

// decompress sniffs the stream's magic bytes and wraps it in the matching
// decoder. Unrecognized input is returned as plain text.
func decompress(br *bufio.Reader) (io.Reader, func(), error) {
	head, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, err
	}

	switch {
	case bytes.HasPrefix(head, bzip2Magic):
		return bzip2.NewReader(br), func() {}, nil
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	default:
		return br, func() {}, nil
	}
}

// columns holds the positions of the modeled columns in a header row.
type columns struct {
	state, month, lat, lon int
}

func locateColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToUpper(strings.TrimSpace(h))] = i
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := idx[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	c := columns{
		state: lookup(domain.ColState),
		month: lookup(domain.ColMonth),
		lat:   lookup(domain.ColLatitude),
		lon:   lookup(domain.ColLongitude),
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("%w: missing columns %s", domain.ErrMalformed, strings.Join(missing, ", "))
	}
	return c, nil
}

func parse(ctx context.Context, r io.Reader) (*domain.Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no header row", domain.ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
	}
	header = trimBOM(header)

	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	d := &domain.Dataset{Columns: header}
	for line := 2; ; line++ {
		if line%4096 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
		}

		a, err := parseAccident(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrMalformed, line, err)
		}
		d.Accidents = append(d.Accidents, a)
	}
	return d, nil
}

func parseAccident(rec []string, c columns) (domain.Accident, error) {
	state, err := strconv.Atoi(strings.TrimSpace(rec[c.state]))
	if err != nil {
		return domain.Accident{}, fmt.Errorf("%s %q is not an integer", domain.ColState, rec[c.state])
	}

	month, err := strconv.Atoi(strings.TrimSpace(rec[c.month]))
	if err != nil {
		return domain.Accident{}, fmt.Errorf("%s %q is not an integer", domain.ColMonth, rec[c.month])
	}
	if month < 1 || month > 12 {
		return domain.Accident{}, fmt.Errorf("%s %d out of range", domain.ColMonth, month)
	}

	lat, err := parseCoordinate(rec[c.lat])
	if err != nil {
		return domain.Accident{}, fmt.Errorf("%s: %w", domain.ColLatitude, err)
	}
	lon, err := parseCoordinate(rec[c.lon])
	if err != nil {
		return domain.Accident{}, fmt.Errorf("%s: %w", domain.ColLongitude, err)
	}

	return domain.Accident{
		State:     state,
		Month:     month,
		Latitude:  lat,
		Longitude: lon,
		Values:    rec,
	}, nil
}

// parseCoordinate parses a decimal degree value. Empty cells and "NA" are
// missing (NaN).
func parseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "NA" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func trimBOM(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header
}
