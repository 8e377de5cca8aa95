package utils

import (
	"fmt"

	"backend/models"

	"github.com/xuri/excelize/v2"
)

const excelDateFormat = "2006-01-02"

// IncomesToExcel builds the downloadable income workbook.
func IncomesToExcel(incomes []models.Income) *excelize.File {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "Source")
	f.SetCellValue("Sheet1", "B1", "Amount")
	f.SetCellValue("Sheet1", "C1", "Date")

	for i, in := range incomes {
		row := i + 2
		f.SetCellValue("Sheet1", fmt.Sprintf("A%d", row), in.Source)
		f.SetCellValue("Sheet1", fmt.Sprintf("B%d", row), in.Amount)
		f.SetCellValue("Sheet1", fmt.Sprintf("C%d", row), in.Date.Format(excelDateFormat))
	}
	return f
}

// ExpensesToExcel builds the downloadable expense workbook.
func ExpensesToExcel(expenses []models.Expense) *excelize.File {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "Category")
	f.SetCellValue("Sheet1", "B1", "Amount")
	f.SetCellValue("Sheet1", "C1", "Date")

	for i, ex := range expenses {
		row := i + 2
		f.SetCellValue("Sheet1", fmt.Sprintf("A%d", row), ex.Category)
		f.SetCellValue("Sheet1", fmt.Sprintf("B%d", row), ex.Amount)
		f.SetCellValue("Sheet1", fmt.Sprintf("C%d", row), ex.Date.Format(excelDateFormat))
	}
	return f
}
