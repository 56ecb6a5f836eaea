package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Karel2025colab/BTP-room-estimator/internal/estimate"
	"github.com/Karel2025colab/BTP-room-estimator/internal/quote"
)

// RoomsFile is the YAML document read by the rooms command.
type RoomsFile struct {
	Project string          `yaml:"project"`
	Rooms   []estimate.Room `yaml:"rooms"`
	Extras  []quote.Extra   `yaml:"extras,omitempty"`
}

var roomsCmd = &cobra.Command{
	Use:   "rooms FILE",
	Short: "Detailed estimate from a YAML list of rooms",
	Long: `Detailed estimate from a YAML list of rooms. Each room's walls and ceiling
are covered, minus 21 sq ft per door and 12 sq ft per window, with a fixed
10% complexity allowance.

Example file:

  project: Smith Remodel
  rooms:
    - name: Den
      length: 12
      width: 10
      height: 8
      doors: 1
      windows: 1
  extras:
    - label: Permit
      amount: 40`,
	Args: cobra.ExactArgs(1),
	RunE: runRooms,
}

func runRooms(cmd *cobra.Command, args []string) error {
	rf, err := readRoomsFile(args[0])
	if err != nil {
		return err
	}
	if err := estimate.ValidateRooms(rf.Rooms); err != nil {
		return err
	}
	if err := quote.ValidateExtras(rf.Extras); err != nil {
		return err
	}

	mode := estimate.RoundPerRoom
	if once, _ := cmd.Flags().GetBool("round-once"); once {
		mode = estimate.RoundOnce
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	rb, total := estimate.EstimateByRoomsRounding(cat, rf.Rooms, mode)
	printQuote(cmd.OutOrStdout(), quote.FromRooms(rf.Project, rb, total, rf.Extras, time.Now()))
	return nil
}

func readRoomsFile(path string) (RoomsFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return RoomsFile{}, err
	}

	var rf RoomsFile
	if err := yaml.Unmarshal(b, &rf); err != nil {
		return RoomsFile{}, fmt.Errorf("yaml rooms parsing error: %w", err)
	}
	for i := range rf.Rooms {
		if rf.Rooms[i].Name == "" {
			rf.Rooms[i].Name = fmt.Sprintf("Room %d", i+1)
		}
	}
	return rf, nil
}

func init() {
	rootCmd.AddCommand(roomsCmd)
	roomsCmd.Flags().Bool("round-once", false, "round the grand total once instead of summing rounded room totals")
}
