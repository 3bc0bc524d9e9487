package parse

// Parsers for the GTFS tables consumed by the routing engine. Each table
// gets its own file. Unlike a validator, the parsers here are defensive:
// rows that fail validation are skipped, never fatal, so a sloppy feed
// still routes.

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/spkg/bom"
)

func init() {
	// LazyCSVReader required (at least) to survive sloppy use of
	// quotes. The BOM reader strips unicode BOMs if present.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return gocsv.LazyCSVReader(bom.NewReader(in))
	})
}
