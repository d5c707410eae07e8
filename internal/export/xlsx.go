package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"seocrawler/crawler"
)

const sheetName = "Sheet1"

// WriteXLSX writes a workbook with one sheet: the header row followed by one
// row per record. Counts are stored as numbers.
func WriteXLSX(w io.Writer, report crawler.Report) (err error) {
	book := excelize.NewFile()
	defer func() {
		if closeErr := book.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	headers := crawler.Headers()
	if err := book.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}

	for i, record := range report.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}

		values := record.Values()
		if err := book.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}

	if err := book.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}

	return nil
}
