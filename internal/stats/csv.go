package stats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
)

// CSVSink appends one row per session to a CSV file, writing the header when
// the file does not exist yet or is empty.
type CSVSink struct {
	mu   sync.Mutex
	path string
}

// NewCSVSink returns a sink for path. Nothing is touched until the first row.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path}
}

// Path is the file the sink writes to.
func (s *CSVSink) Path() string { return s.path }

// LogStats appends sum.
func (s *CSVSink) LogStats(sum Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open stats file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat stats file: %w", err)
	}
	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("write stats header: %w", err)
		}
	}
	if err := w.Write(sum.Record()); err != nil {
		return fmt.Errorf("write stats row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush stats file: %w", err)
	}
	return nil
}

// Read decodes every row of a statistics CSV. A leading header row is skipped.
func Read(r io.Reader) ([]Summary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var out []Summary
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("read stats line %d: %w", line, err)
		}
		if line == 1 && slices.Equal(rec, Header) {
			continue
		}
		s, err := ParseRecord(rec)
		if err != nil {
			return out, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, s)
	}
}

// ReadFile is Read over the file at path.
func ReadFile(path string) ([]Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stats file: %w", err)
	}
	defer f.Close()
	return Read(f)
}
