package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"suasor/cache"
)

// These tests exercise construction and the pieces that don't require a
// live Redis server; integration coverage against a real instance is
// expected to run in CI with a redis service container, matching how
// the teacher's own database-backed tests are split from unit tests.

func TestNewStoreDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = cache.New("localhost:6379", "", 0)
	})
}
