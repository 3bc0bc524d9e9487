package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tacal100/transit"
)

var routeCmd = &cobra.Command{
	Use:   "route <from> <to>",
	Short: "Computes the earliest-arrival journey between two stations",
	Long:  "Computes the earliest-arrival journey between two stations. Stations are given as stop IDs or partial station names.",
	Args:  cobra.ExactArgs(2),
	RunE:  route,
}

var (
	startTime string
	queryDate string
	pretty    bool
)

func init() {
	routeCmd.Flags().StringVarP(&startTime, "time", "t", "08:00:00", "Departure time from origin (HH:MM:SS)")
	routeCmd.Flags().StringVarP(&queryDate, "date", "d", "", "Service date (YYYYMMDD, defaults to today)")
	routeCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON output")
}

func route(cmd *cobra.Command, args []string) error {
	feed, err := transit.LoadFeed(dataDir)
	if err != nil {
		return err
	}

	originID := args[0]
	if stop, ok := feed.ResolveStop(args[0]); ok {
		originID = stop.ID
	}
	destID := args[1]
	if stop, ok := feed.ResolveStop(args[1]); ok {
		destID = stop.ID
	}

	date := queryDate
	if date == "" {
		date = time.Now().Format("20060102")
	}

	journey, err := feed.ComputeRoute(originID, destID, startTime, date)
	if err != nil {
		// A failed query is still an answer; report it as the API would.
		return printJSON(map[string]interface{}{"error": err.Error(), "success": false})
	}
	return printJSON(journey)
}

func printJSON(v interface{}) error {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
