package sink

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"go-profile-harvester/internal/models"
)

const (
	experienceSheet = "Experience"
	educationSheet  = "Education"
)

var experienceHeader = []any{
	"Profile URL", "Title", "Company", "Employment Type",
	"Date Range", "Location", "Description", "Skills",
}

var educationHeader = []any{"Profile URL", "Institution", "Diploma", "Duration"}

// WriteExcel writes the run's records to an xlsx workbook with one sheet
// per section. Rows keep the run's record order.
func WriteExcel(path string, res *models.RunResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("sink: create output dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(experienceSheet); err != nil {
		return fmt.Errorf("sink: new sheet: %w", err)
	}
	if _, err := f.NewSheet(educationSheet); err != nil {
		return fmt.Errorf("sink: new sheet: %w", err)
	}
	// Drop the default sheet so the workbook has exactly one sheet per section.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("sink: delete default sheet: %w", err)
	}

	if err := writeRow(f, experienceSheet, 1, experienceHeader); err != nil {
		return err
	}
	if err := writeRow(f, educationSheet, 1, educationHeader); err != nil {
		return err
	}

	expRow, eduRow := 2, 2
	for _, target := range res.Results {
		for _, e := range target.Experiences {
			row := []any{e.ProfileURL, e.Title, e.Company, e.EmploymentType, e.DateRange, e.Location, e.Description, e.Skills}
			if err := writeRow(f, experienceSheet, expRow, row); err != nil {
				return err
			}
			expRow++
		}
		for _, e := range target.Educations {
			row := []any{e.ProfileURL, e.Institution, e.Diploma, e.Duration}
			if err := writeRow(f, educationSheet, eduRow, row); err != nil {
				return err
			}
			eduRow++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("sink: save %s: %w", path, err)
	}
	log.Printf("📊 Spreadsheet saved to %s (%d experience, %d education rows)", path, expRow-2, eduRow-2)
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("sink: cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("sink: write row %d on %s: %w", row, sheet, err)
	}
	return nil
}
