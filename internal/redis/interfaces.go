package redis

import "context"

// ReportCacheInterface defines the interface for caching computed reports.
type ReportCacheInterface interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	InvalidateVersion(ctx context.Context, version string) error
}

// Ensure concrete types implement interfaces.
var _ ReportCacheInterface = (*ReportCache)(nil)
