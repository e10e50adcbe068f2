/*
Package cbmapper renders minimaps of Caesar 3, Pharaoh and Zeus scenarios,
saved games and adventures.

A single file is rendered with Render and written with Write; adventures
produce one image per map with the colonies numbered after the parent
city. Scan renders every matching file below a directory, optionally
caching the results in a Catalog keyed by the CRC of each file.
*/
package cbmapper

import (
	"log"

	"github.com/bodgit/cbmapper/image"
)

const defaultWorkers = 10

// Options control how images are written
type Options struct {
	Format  image.Format
	Scale   int // Values less than two leave the image as is
	Workers int // Used by Scan, defaults to 10
}

// Mapper renders minimaps
type Mapper struct {
	catalog *Catalog
	logger  *log.Logger
}

// New returns a Mapper. The catalog may be nil in which case nothing is
// cached.
func New(catalog *Catalog, logger *log.Logger) *Mapper {
	return &Mapper{
		catalog: catalog,
		logger:  logger,
	}
}
