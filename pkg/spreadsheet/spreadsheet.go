package spreadsheet

import (
	"io"

	"github.com/xuri/excelize/v2"

	appErrors "github.com/noah-isme/edutrack-api/pkg/errors"
)

// Column labels recognised by the importer. These match the official score
// sheet handed out to teachers, so they are not configurable.
const (
	ColStudentCode = "Mã HS"
	ColFullName    = "Họ và tên"
	ColMidterm     = "ĐĐGgk"
	ColFinal       = "ĐĐGck"
	ColComment     = "Nhận xét"

	// GroupRegular is the merged group label above the five regular
	// assessment columns.
	GroupRegular = "ĐĐGtx"

	templateSheet = "Mau_Nhap_Lieu"
)

// RegularColumns lists the five regular-assessment column labels in order.
var RegularColumns = []string{"01", "02", "03", "04", "05"}

// ReadRows decodes the first sheet of an xlsx workbook into raw string
// rows. Any container-level failure maps to ErrParse; cell-level oddities
// are left for the importer to sort out.
func ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrParse.Code, appErrors.ErrParse.Status, "unreadable spreadsheet")
	}
	defer f.Close() //nolint:errcheck

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, appErrors.Clone(appErrors.ErrParse, "workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrParse.Code, appErrors.ErrParse.Status, "unreadable sheet")
	}
	return rows, nil
}

// WriteTemplate produces the blank import workbook: a two-row header with
// the regular-assessment group label merged across columns 01..05, and no
// data rows. Round-tripping this file through the importer yields zero
// students and zero errors.
func WriteTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", templateSheet); err != nil {
		return nil, err
	}

	if err := f.SetCellValue(templateSheet, "G1", GroupRegular); err != nil {
		return nil, err
	}
	if err := f.MergeCell(templateSheet, "G1", "K1"); err != nil {
		return nil, err
	}

	header := []interface{}{
		"#", "Mã định danh", ColStudentCode, ColFullName, "Tên tiếng", "Ngày sinh",
		"01", "02", "03", "04", "05", ColMidterm, ColFinal, ColComment,
	}
	if err := f.SetSheetRow(templateSheet, "A2", &header); err != nil {
		return nil, err
	}

	widths := []float64{5, 15, 15, 25, 10, 12, 5, 5, 5, 5, 5, 8, 8, 30}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(templateSheet, col, col, w); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
