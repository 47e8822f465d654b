// Package sink defines the persistence boundary for assembled reports. The
// concrete backing store (a ledger service, a database, a file) is
// irrelevant to the pipeline, which only ever holds the ReportSink
// capability.
package sink

import (
	"context"

	"github.com/credlens/credlens/internal/model"
)

// Handle is an opaque reference to a published report, issued by the sink.
type Handle string

// ReportSink receives reports whose score fell below the publish threshold.
type ReportSink interface {
	Publish(ctx context.Context, report *model.Report) (Handle, error)
}

// Discard is a no-op sink for runs where nothing should be persisted.
type Discard struct{}

func (Discard) Publish(_ context.Context, report *model.Report) (Handle, error) {
	return Handle("discard:" + report.ID), nil
}
