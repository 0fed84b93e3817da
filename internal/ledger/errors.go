package ledger

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports caller-supplied data that fails the schema,
// keyed by field name with a single message per field. It is returned
// as a structured result and never retried.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError means the target ids do not exist or are not owned by
// the caller. The store layer cannot tell the two apart and neither can
// the caller.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return e.Resource + " not found"
}

// StoreError wraps a durable-store failure. It is logged with full
// detail and surfaced upward as an opaque internal error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

// CacheError wraps a cache-layer failure. It never crosses the service
// boundary; callers treat it as a forced miss.
type CacheError struct {
	Op  string
	Err error
}

func (e *CacheError) Error() string { return fmt.Sprintf("cache %s: %v", e.Op, e.Err) }
func (e *CacheError) Unwrap() error { return e.Err }
