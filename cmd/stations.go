package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacal100/transit"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "Lists all stations in the feed",
	Args:  cobra.NoArgs,
	RunE:  stations,
}

func stations(cmd *cobra.Command, args []string) error {
	feed, err := transit.LoadFeed(dataDir)
	if err != nil {
		return err
	}

	for _, stop := range feed.Stations() {
		fmt.Printf("%s %s (%f, %f)\n", stop.ID, stop.Name, stop.Lat, stop.Lon)
	}

	return nil
}
