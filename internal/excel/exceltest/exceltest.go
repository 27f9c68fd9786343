// Package exceltest builds small format workbooks for tests.
package exceltest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const SheetName = "顧客リスト"

// Workbook returns an xlsx payload whose first row is headers, with a list
// validation below every header that has an entry in dropdowns.
func Workbook(headers []string, dropdowns map[string][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return nil, err
	}

	for i, header := range headers {
		options, ok := dropdowns[header]
		if !ok {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s1048576", col, col)
		if err := dv.SetDropList(options); err != nil {
			return nil, err
		}
		if err := f.AddDataValidation(SheetName, dv); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
