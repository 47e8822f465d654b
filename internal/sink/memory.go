package sink

import (
	"context"
	"sync"

	"github.com/credlens/credlens/internal/model"
)

// MemorySink collects published reports in memory. Used in tests and as a
// staging sink when no persistence backend is configured.
type MemorySink struct {
	mu      sync.Mutex
	reports []*model.Report
}

// NewMemorySink creates an empty memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Publish(_ context.Context, report *model.Report) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, report)
	return Handle("memory:" + report.ID), nil
}

// Reports returns the published reports in publish order.
func (s *MemorySink) Reports() []*model.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Report, len(s.reports))
	copy(out, s.reports)
	return out
}
