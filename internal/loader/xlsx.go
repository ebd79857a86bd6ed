package loader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

type xlsxReader struct{}

func (xlsxReader) CanRead(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".xlsx")
}

func (xlsxReader) Extension() string { return ".xlsx" }

// ReadRows reads the selected worksheet. Rows are padded to the header width
// since trailing empty cells are not stored.
func (xlsxReader) ReadRows(path string, opt Options) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := opt.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s; available sheets: %s",
			sheet, path, strings.Join(f.GetSheetList(), ", "))
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read %s of %s: %w", describe(opt), path, err)
	}
	if len(cells) == 0 {
		return nil, nil
	}
	width := len(cells[0])
	rows := make([]Row, 0, len(cells)-1)
	for i, c := range cells[1:] {
		for len(c) < width {
			c = append(c, "")
		}
		rows = append(rows, Row{Line: i + 2, Fields: c})
	}
	return rows, nil
}
