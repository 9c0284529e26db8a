package export

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// FileSink appends rows to a CSV file, writing the header only when the
// file is new or empty.
type FileSink struct {
	path string
	mu   sync.Mutex
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Append(ctx context.Context, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("file sink: open %s: %w", s.path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("file sink: stat %s: %w", s.path, err)
	}
	if err := WriteCSV(f, rows, info.Size() == 0); err != nil {
		f.Close()
		return fmt.Errorf("file sink: %w", err)
	}
	return f.Close()
}
