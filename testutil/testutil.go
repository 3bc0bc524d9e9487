package testutil

// Helpers for building synthetic GTFS feeds in tests.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tacal100/transit"
)

// WriteFeedDir writes the given tables (filename -> rows) into a fresh
// temp directory and returns its path.
func WriteFeedDir(t testing.TB, files map[string][]string) string {
	dir := t.TempDir()
	for filename, content := range files {
		err := os.WriteFile(filepath.Join(dir, filename), []byte(strings.Join(content, "\n")), 0o644)
		require.NoError(t, err)
	}
	return dir
}

// BuildFeed fills in header-only versions of any missing required
// tables, writes everything to disk and loads the result.
func BuildFeed(t testing.TB, files map[string][]string) *transit.Feed {
	if files["stops.csv"] == nil {
		files["stops.csv"] = []string{"stop_id,stop_name,stop_lat,stop_lon"}
	}
	if files["stop_times.csv"] == nil {
		files["stop_times.csv"] = []string{"trip_id,stop_id,stop_sequence,arrival_time,departure_time"}
	}

	feed, err := transit.LoadFeed(WriteFeedDir(t, files))
	require.NoError(t, err)
	return feed
}

// FeedAFiles is a minimal two-trip feed: T1 runs A 08:00 -> B 08:30/08:31
// -> C 09:15, T2 runs B 08:45 -> D 09:10, both on service S1 active on
// 20250101 only.
func FeedAFiles() map[string][]string {
	return map[string][]string{
		"stops.csv": {
			"stop_id,stop_name,stop_lat,stop_lon",
			"A,Alpha,45.0,7.0",
			"B,Bravo,45.1,7.1",
			"C,Charlie,45.2,7.2",
			"D,Delta,45.3,7.3",
		},
		"stop_times.csv": {
			"trip_id,stop_id,stop_sequence,arrival_time,departure_time",
			"T1,A,0,08:00:00,08:00:00",
			"T1,B,1,08:30:00,08:31:00",
			"T1,C,2,09:15:00,09:15:00",
			"T2,B,0,08:45:00,08:45:00",
			"T2,D,1,09:10:00,09:10:00",
		},
		"routes.csv": {
			"route_id,route_short_name,route_long_name,route_type",
			"R1,Line 1,Alpha to Charlie,2",
			"R2,Line 2,Bravo to Delta,2",
		},
		"trips.csv": {
			"trip_id,route_id,service_id,trip_headsign,trip_short_name",
			"T1,R1,S1,Charlie,1",
			"T2,R2,S1,Delta,2",
		},
		"calendar_dates.csv": {
			"service_id,date,exception_type",
			"S1,20250101,1",
		},
	}
}
