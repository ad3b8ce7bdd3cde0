package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/LavenderBridge/attend/internal/export"
	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export courses (json) or the attendance log (csv, xlsx)",
	Example: `  attend export > backup.json
  attend export -f xlsx -o attendance.xlsx`,
	Run: func(cmd *cobra.Command, args []string) {
		switch exportFormat {
		case "json", export.FormatCSV, export.FormatXLSX:
		default:
			fmt.Println("❌ Format must be json, csv or xlsx")
			return
		}
		if exportFormat == export.FormatXLSX && exportOutput == "" {
			fmt.Println("❌ xlsx export needs --output")
			return
		}

		withTracker(cmd, func(ctx context.Context, svc *tracker.Service) {
			var out io.Writer = os.Stdout
			if exportOutput != "" {
				f, err := os.Create(exportOutput)
				if err != nil {
					fmt.Println("❌ Error creating file:", err)
					return
				}
				defer f.Close()
				out = f
			}

			if err := writeExport(out, svc); err != nil {
				fmt.Println("❌ Export failed:", err)
				return
			}
			if exportOutput != "" {
				fmt.Println("✅ Exported to", exportOutput)
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "json, csv or xlsx")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
}

func writeExport(w io.Writer, svc *tracker.Service) error {
	if exportFormat == "json" {
		data, err := svc.Snapshot()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	return export.Write(w, exportFormat, export.Rows(svc.Courses(true)))
}
