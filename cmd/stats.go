package cmd

import (
	"context"
	"fmt"

	"github.com/LavenderBridge/attend/internal/algorithm"
	"github.com/LavenderBridge/attend/internal/models"
	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attendance statistics across courses",
	Run: func(cmd *cobra.Command, args []string) {
		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			all := svc.Courses(true)

			var active, archived, presents, absents, cancelled int
			bands := map[models.Band]int{}
			for _, c := range all {
				presents += c.Presents
				absents += c.Absents
				cancelled += c.Cancelled
				if c.IsArchived {
					archived++
					continue
				}
				active++
				bands[algorithm.Summarize(c).Band]++
			}

			fmt.Println("📊 Statistics")
			fmt.Println("-------------")
			fmt.Printf("Courses:          %d (%d archived)\n", active+archived, archived)
			fmt.Printf("Classes marked:   %d present, %d absent, %d cancelled\n", presents, absents, cancelled)
			fmt.Printf("Overall:          %d%%\n", algorithm.Percentage(presents, absents))
			fmt.Printf("On track:         %d\n", bands[models.BandOK])
			fmt.Printf("Close (<10 pts):  %d\n", bands[models.BandWarning])
			fmt.Printf("Below required:   %d\n", bands[models.BandDanger])
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
