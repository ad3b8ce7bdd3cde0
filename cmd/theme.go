package cmd

import (
	"context"
	"fmt"

	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or change the theme preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{tracker.ThemeLight, tracker.ThemeDark, "toggle"},
	Run: func(cmd *cobra.Command, args []string) {
		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			if len(args) == 0 {
				fmt.Println("Theme:", svc.Theme())
				return
			}

			switch args[0] {
			case "toggle":
				fmt.Println("✅ Theme set to", svc.ToggleTheme(ctx))
			case tracker.ThemeLight, tracker.ThemeDark:
				svc.SetTheme(ctx, args[0])
				fmt.Println("✅ Theme set to", args[0])
			default:
				fmt.Println("❌ Theme must be light, dark or toggle")
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
