package tokenmanager

import (
	"context"
	"sync"
	"sync/atomic"
)

// The shared manager is published through an atomic pointer so the common
// already-initialized path stays lock-free; construction is serialized by
// sharedMu with a re-check, so concurrent first callers build it only once.
var (
	shared   atomic.Pointer[TokenManager]
	sharedMu sync.Mutex
)

// Shared returns the process-wide TokenManager, constructing it from the
// AICORE_* environment on first use. Every caller receives the same
// instance; there is deliberately no reset, the instance lives for the
// process lifetime. A failed construction (missing settings) is returned to
// the caller and retried on the next call.
func Shared(opts ...Option) (*TokenManager, error) {
	if tm := shared.Load(); tm != nil {
		return tm, nil
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()

	if tm := shared.Load(); tm != nil {
		return tm, nil
	}

	tm, err := NewTokenManager(context.Background(), ConfigFromEnv(), opts...)
	if err != nil {
		return nil, err
	}

	shared.Store(tm)
	return tm, nil
}
