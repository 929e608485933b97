package interpreter

import "go.trai.ch/pexwrap/internal/core/domain"

// CacheKeyForTest exports the private cacheKey function for testing purposes.
func CacheKeyForTest(interp *domain.Interpreter, requirement string) string {
	return cacheKey(interp, requirement)
}
