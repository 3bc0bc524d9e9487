package transit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacal100/transit"
	"github.com/tacal100/transit/model"
	"github.com/tacal100/transit/testutil"
)

func TestComputeRouteSingleTrip(t *testing.T) {
	feed := testutil.BuildFeed(t, testutil.FeedAFiles())

	journey, err := feed.ComputeRoute("A", "C", "08:00:00", "20250101")
	require.NoError(t, err)

	assert.Equal(t, "A", journey.Origin)
	assert.Equal(t, "Alpha", journey.OriginName)
	assert.Equal(t, "C", journey.Destination)
	assert.Equal(t, "Charlie", journey.DestinationName)
	assert.Equal(t, "09:15:00", journey.ArrivalTime)
	assert.Equal(t, 75.0, journey.TotalTravelMinutes)
	assert.Equal(t, 3, journey.StopCount)
	assert.Equal(t, 0, journey.TransferCount)
	assert.Empty(t, journey.Transfers)

	require.Len(t, journey.DetailedRoute, 3)
	for _, visit := range journey.DetailedRoute {
		assert.Equal(t, "T1", visit.TripID)
		assert.Equal(t, "R1", visit.RouteID)
		assert.Equal(t, "Line 1", visit.RouteName)
		assert.False(t, visit.IsTransfer)
	}
	assert.Equal(t, []string{"A", "B", "C"}, visitStops(journey))
}

func TestComputeRouteWithTransfer(t *testing.T) {
	feed := testutil.BuildFeed(t, testutil.FeedAFiles())

	journey, err := feed.ComputeRoute("A", "D", "08:00:00", "20250101")
	require.NoError(t, err)

	assert.Equal(t, "09:10:00", journey.ArrivalTime)
	assert.Equal(t, 70.0, journey.TotalTravelMinutes)
	assert.Equal(t, 1, journey.TransferCount)

	require.Len(t, journey.Transfers, 1)
	transfer := journey.Transfers[0]
	assert.Equal(t, "B", transfer.StopID)
	assert.Equal(t, "Bravo", transfer.AtStop)
	assert.Equal(t, "T1", transfer.FromTrip)
	assert.Equal(t, "T2", transfer.ToTrip)
	assert.Equal(t, "R1", transfer.FromRoute)
	assert.Equal(t, "R2", transfer.ToRoute)
	assert.Equal(t, "Transfer from trip T1 to trip T2", transfer.TransferInfo)

	assert.Equal(t, []string{"A", "B", "B", "D"}, visitStops(journey))

	// The boarding visit at B is flagged as the transfer.
	boarding := journey.DetailedRoute[2]
	assert.True(t, boarding.IsTransfer)
	assert.Equal(t, "T2", boarding.TripID)
	assert.Equal(t, "Transfer from trip T1 to trip T2", boarding.TransferNote)
}

func TestComputeRouteNoDeparturesLeft(t *testing.T) {
	feed := testutil.BuildFeed(t, testutil.FeedAFiles())

	_, err := feed.ComputeRoute("A", "C", "09:00:00", "20250101")
	require.Error(t, err)
	assert.Equal(t, "No route found from A to C after 09:00:00 on 20250101", err.Error())
}

func TestComputeRouteNoServiceOnDate(t *testing.T) {
	feed := testutil.BuildFeed(t, testutil.FeedAFiles())

	_, err := feed.ComputeRoute("A", "D", "08:00:00", "20250102")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No route found from A to D")
}

func TestComputeRouteIdenticalEndpoints(t *testing.T) {
	feed := testutil.BuildFeed(t, testutil.FeedAFiles())

	journey, err := feed.ComputeRoute("A", "A", "08:00:00", "20250101")
	require.NoError(t, err)

	assert.Equal(t, 0.0, journey.TotalTravelMinutes)
	assert.Equal(t, 1, journey.StopCount)
	assert.Equal(t, "08:00:00", journey.ArrivalTime)
	assert.Equal(t, "Origin equals destination", journey.Note)

	require.Len(t, journey.DetailedRoute, 1)
	visit := journey.DetailedRoute[0]
	assert.Equal(t, "A", visit.StopID)
	assert.Equal(t, "08:00:00", visit.ArrivalTime)
	assert.Equal(t, "08:00:00", visit.DepartureTime)
	assert.Equal(t, "Origin equals destination", visit.Note)
}

func TestComputeRouteIdenticalEndpointsIgnoresSchedule(t *testing.T) {
	// The trivial journey does not depend on schedule content; a feed
	// with no trips at all still produces it.
	feed := testutil.BuildFeed(t, map[string][]string{
		"stops.csv": {
			"stop_id,stop_name,stop_lat,stop_lon",
			"X,Xray,1.0,2.0",
		},
	})

	journey, err := feed.ComputeRoute("X", "X", "23:59:59", "19700101")
	require.NoError(t, err)
	assert.Equal(t, 0.0, journey.TotalTravelMinutes)
	assert.Equal(t, "Origin equals destination", journey.Note)
}

func TestComputeRouteUnknownStops(t *testing.T) {
	feed := testutil.BuildFeed(t, testutil.FeedAFiles())

	_, err := feed.ComputeRoute("X", "A", "08:00:00", "20250101")
	require.Error(t, err)
	assert.Equal(t, "Origin stop not found: X", err.Error())

	_, err = feed.ComputeRoute("A", "X", "08:00:00", "20250101")
	require.Error(t, err)
	assert.Equal(t, "Destination stop not found: X", err.Error())
}

func TestComputeRouteBadStartTime(t *testing.T) {
	feed := testutil.BuildFeed(t, testutil.FeedAFiles())

	for _, bad := range []string{"derp", "08:00", "08:00:xx", ""} {
		_, err := feed.ComputeRoute("A", "C", bad, "20250101")
		require.Error(t, err, "start_time %q", bad)
		assert.Contains(t, err.Error(), "Invalid start_time")
	}
}

func TestComputeRouteHyphenatedDate(t *testing.T) {
	feed := testutil.BuildFeed(t, testutil.FeedAFiles())

	journey, err := feed.ComputeRoute("A", "C", "08:00:00", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, "09:15:00", journey.ArrivalTime)
	assert.Equal(t, "20250101", journey.Date)
}

func TestComputeRouteMissingOptionalTables(t *testing.T) {
	// Dropping routes.csv, trips.csv or calendar_dates.csv only costs
	// decorations or the date filter, never reachability.
	for _, missing := range []string{"routes.csv", "trips.csv", "calendar_dates.csv"} {
		t.Run(missing, func(t *testing.T) {
			files := testutil.FeedAFiles()
			delete(files, missing)
			feed := testutil.BuildFeed(t, files)

			journey, err := feed.ComputeRoute("A", "D", "08:00:00", "20250101")
			require.NoError(t, err)
			assert.Equal(t, "09:10:00", journey.ArrivalTime)
		})
	}
}

func TestComputeRouteRouteNameFallsBackToRouteID(t *testing.T) {
	files := testutil.FeedAFiles()
	delete(files, "routes.csv")
	feed := testutil.BuildFeed(t, files)

	journey, err := feed.ComputeRoute("A", "C", "08:00:00", "20250101")
	require.NoError(t, err)
	for _, visit := range journey.DetailedRoute {
		assert.Equal(t, "R1", visit.RouteName)
		assert.Equal(t, "", visit.RouteDesc)
	}
}

func TestComputeRoutePathProperties(t *testing.T) {
	feed := testutil.BuildFeed(t, testutil.FeedAFiles())

	journey, err := feed.ComputeRoute("A", "D", "08:00:00", "20250101")
	require.NoError(t, err)

	// Clock readings never run backwards along the path.
	prev := -1
	for _, visit := range journey.DetailedRoute {
		arrival := model.ParseTime(visit.ArrivalTime)
		departure := model.ParseTime(visit.DepartureTime)
		require.NotEqual(t, model.TimeUnset, arrival)
		require.NotEqual(t, model.TimeUnset, departure)
		assert.LessOrEqual(t, prev, arrival)
		assert.LessOrEqual(t, arrival, departure)
		prev = departure
	}

	// Trip boundaries happen at a shared stop with a feasible wait.
	for i := 1; i < len(journey.DetailedRoute); i++ {
		cur, last := journey.DetailedRoute[i], journey.DetailedRoute[i-1]
		if cur.TripID == last.TripID {
			continue
		}
		assert.Equal(t, last.StopID, cur.StopID)
		assert.GreaterOrEqual(t,
			model.ParseTime(cur.DepartureTime),
			model.ParseTime(last.ArrivalTime),
		)
	}
}

func TestComputeRoutePerCall(t *testing.T) {
	dir := testutil.WriteFeedDir(t, testutil.FeedAFiles())

	journey, err := transit.ComputeRoute("A", "C", "08:00:00", "20250101", dir)
	require.NoError(t, err)
	assert.Equal(t, "09:15:00", journey.ArrivalTime)

	_, err = transit.ComputeRoute("A", "C", "08:00:00", "20250101", t.TempDir())
	require.Error(t, err)
}

func visitStops(journey *transit.Journey) []string {
	stops := []string{}
	for _, visit := range journey.DetailedRoute {
		stops = append(stops, visit.StopID)
	}
	return stops
}
