// Package datasource defines the client boundary toward an external virtual
// table platform (e.g. a data integration layer exposing curated physical
// sensor tables). The harness never depends on it for results; it documents
// the future integration point where simulated data would be replaced by
// real observations.
package datasource

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by every VirtualTablesClient query. The
// client is a deliberate stub; callers must surface this error rather than
// swallow it.
var ErrNotImplemented = errors.New("datasource: virtual tables client is not implemented")

// Record is a single row returned from a virtual table.
type Record map[string]any

// VirtualTablesClient is a stub client for a virtual table platform. It
// holds connection parameters (API keys, endpoint URLs) so that a real
// implementation can slot in without changing callers.
type VirtualTablesClient struct {
	connectionInfo map[string]string
}

// NewVirtualTablesClient creates a stub client. connectionInfo may be nil.
func NewVirtualTablesClient(connectionInfo map[string]string) *VirtualTablesClient {
	if connectionInfo == nil {
		connectionInfo = map[string]string{}
	}
	return &VirtualTablesClient{connectionInfo: connectionInfo}
}

// ConnectionInfo returns a copy of the configured connection parameters.
func (c *VirtualTablesClient) ConnectionInfo() map[string]string {
	out := make(map[string]string, len(c.connectionInfo))
	for k, v := range c.connectionInfo {
		out[k] = v
	}
	return out
}

// Query retrieves up to limit rows from the named table. It always returns
// ErrNotImplemented: connecting to a real data platform is an intentionally
// open extension point of this harness.
func (c *VirtualTablesClient) Query(ctx context.Context, tableName string, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("querying table %q (limit %d): %w", tableName, limit, ErrNotImplemented)
}
