package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/credlens/credlens/internal/model"
)

// FileSink appends reports as JSON lines to a local file. It stands in for
// the remote ledger backend behind the same interface.
type FileSink struct {
	path string
	mu   sync.Mutex
}

// NewFileSink creates a file sink writing to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Publish appends the report as one JSON line.
func (s *FileSink) Publish(_ context.Context, report *model.Report) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open report file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(report); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return Handle(fmt.Sprintf("file:%s#%s", s.path, report.ID)), nil
}
