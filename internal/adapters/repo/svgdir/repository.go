package svgdir

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/framecast/internal/domain"
	"github.com/bnema/framecast/internal/ports"
)

const (
	startMarker = `d="M`
	endMarker   = `z"`

	// Asset lines are typically short, but a pre-rendered path can put
	// the whole geometry on one very long line.
	maxLineBytes = 4 * 1024 * 1024
)

// Repository reads frame path data from a directory of numbered SVG
// assets (<dir>/<index>.svg). Assets are immutable and read-only, so one
// Repository is safe to share across concurrent sessions.
type Repository struct {
	dir    string
	logger *slog.Logger
}

var _ ports.FrameRepository = (*Repository)(nil)

func NewRepository(dir string, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}

	return &Repository{dir: filepath.Clean(dir), logger: logger}
}

// PathData scans the asset for the path block between the start marker
// (`d="M`) and end marker (`z"`) lines and returns it with line breaks
// collapsed to single spaces.
//
// The scan records start as the 0-based offset of a start-marker line and
// end as one past the 0-based offset of an end-marker line, and a later
// marker line overwrites an earlier one, so the LAST occurrence of each
// marker wins. A start marker on the very first line is indistinguishable
// from the zero sentinel and counts as not found. Downstream output is
// defined against this exact window; do not "fix" it to first-occurrence
// or anchored matching.
func (r *Repository) PathData(ctx context.Context, index int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if index < 1 {
		return "", fmt.Errorf("frame index %d out of range: %w", index, domain.ErrFrameUnavailable)
	}

	name := filepath.Join(r.dir, strconv.Itoa(index)+".svg")
	f, err := os.Open(name)
	if err != nil {
		return "", fmt.Errorf("open frame asset %q: %w", name, errors.Join(domain.ErrFrameUnavailable, err))
	}
	defer f.Close()

	var lines []string
	start, end := 0, 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for i := 0; scanner.Scan(); {
		line := scanner.Text()
		if strings.Contains(line, startMarker) {
			start = i
		}
		i++
		if strings.Contains(line, endMarker) {
			end = i
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read frame asset %q: %w", name, errors.Join(domain.ErrFrameUnavailable, err))
	}

	if start != 0 && end != 0 {
		// An inverted window (last start marker after the last end
		// marker) yields an empty path without a diagnostic.
		if start >= end {
			return "", nil
		}
		return strings.Join(lines[start:end], " "), nil
	}

	r.logger.Warn("path data not found", "asset", name)
	return "", nil
}
