/*
Package image2bin is a library for converting 1-bit sprite images into tables
of bytes suitable for including in assembler source.
*/
package image2bin

import "log"

// Converter converts image files into assembler listings, optionally caching
// the results
type Converter struct {
	cache  *Cache
	logger *log.Logger
}

// New returns a Converter. cache may be nil to disable caching.
func New(cache *Cache, logger *log.Logger) *Converter {
	return &Converter{
		cache:  cache,
		logger: logger,
	}
}
