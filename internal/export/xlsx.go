package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jmoralesv/sombra/internal/model"
)

// ExportXLSX writes the reduced shadow list and the site's building records
// to a spreadsheet: one "Shadows" sheet and one "Buildings" sheet.
func ExportXLSX(path string, site model.Site, shadows []model.Shadow) error {
	f := excelize.NewFile()
	defer f.Close()

	const shadowSheet = "Shadows"
	if err := f.SetSheetName("Sheet1", shadowSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	setRow := func(sheet string, row int, values []interface{}) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	header := []interface{}{"ID", "Group", "Cadastral ref", "Min azimut", "Max azimut", "Min elevation", "Max elevation"}
	if err := setRow(shadowSheet, 1, header); err != nil {
		return err
	}
	for i, s := range shadows {
		b := s.Box()
		row := []interface{}{s.ID, s.GroupID, s.CadastralRef, b.MinAzimut, b.MaxAzimut, b.MinElevation, b.MaxElevation}
		if err := setRow(shadowSheet, i+2, row); err != nil {
			return err
		}
	}

	const buildingSheet = "Buildings"
	if _, err := f.NewSheet(buildingSheet); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}
	if err := setRow(buildingSheet, 1, []interface{}{"ID", "Group", "Cadastral ref", "Height code", "Floors", "Vertices"}); err != nil {
		return err
	}
	for i, b := range site.Buildings {
		row := []interface{}{b.ID, b.GroupID, b.CadastralRef, b.HeightCode, model.ParseFloorCount(b.HeightCode), len(b.Footprint)}
		if err := setRow(buildingSheet, i+2, row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
