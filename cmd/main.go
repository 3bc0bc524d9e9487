package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "transit",
	Short:        "Earliest-arrival train routing over GTFS schedules",
	SilenceUsage: true,
}

var dataDir string

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "D", "public/data", "Directory holding the GTFS csv tables")
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(stationsCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
