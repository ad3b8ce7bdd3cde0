package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/LavenderBridge/attend/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	sheetName = "Attendance"
)

var header = []string{"course_id", "course_name", "record_id", "date", "status", "extra_class", "slot_id"}

// Row is one line of the flat attendance log.
type Row struct {
	CourseID     string
	CourseName   string
	RecordID     string
	Date         string
	Status       models.Status
	IsExtraClass bool
	SlotID       string
}

func (r Row) fields() []string {
	return []string{r.CourseID, r.CourseName, r.RecordID, r.Date, string(r.Status), strconv.FormatBool(r.IsExtraClass), r.SlotID}
}

// Rows flattens every course's records, oldest first. Records with the
// same timestamp keep course order.
func Rows(courses []models.Course) []Row {
	var rows []Row
	for _, c := range courses {
		for _, r := range c.AttendanceRecords {
			rows = append(rows, Row{
				CourseID:     c.ID,
				CourseName:   c.Name,
				RecordID:     r.ID,
				Date:         r.Data,
				Status:       r.Status,
				IsExtraClass: r.IsExtraClass,
				SlotID:       r.ScheduleItemID,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rowTime(rows[i]) < rowTime(rows[j])
	})
	return rows
}

func rowTime(r Row) int64 {
	return models.AttendanceRecord{Data: r.Date}.Time().UnixNano()
}

// Write encodes rows in the given format.
func Write(w io.Writer, format string, rows []Row) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatXLSX:
		return writeXLSX(w, rows)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{r.CourseID, r.CourseName, r.RecordID, r.Date, string(r.Status), r.IsExtraClass, r.SlotID}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}
