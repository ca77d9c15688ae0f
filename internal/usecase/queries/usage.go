package queries

import (
	"context"
)

// UsageQueries serves the administrator's platform usage report.
type UsageQueries interface {
	Summary(ctx context.Context) (*UsageView, error)
}

type UsageReadStore interface {
	Summary(ctx context.Context) (*UsageView, error)
}

type usageQueriesImpl struct {
	readStore UsageReadStore
}

func NewUsageQueries(readStore UsageReadStore) UsageQueries {
	return &usageQueriesImpl{readStore: readStore}
}

func (q *usageQueriesImpl) Summary(ctx context.Context) (*UsageView, error) {
	return q.readStore.Summary(ctx)
}
