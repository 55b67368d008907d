package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"welfare/internal/eventlog"
	"welfare/internal/reports/models"
)

const (
	EventLogSheet = "EventLog"
	BenefitsSheet = "Benefits"

	// XLSXContentType is the media type of workbooks produced here.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var eventLogHeader = []string{
	"LogID", "UserID", "EventType", "EventDescription", "EntityType",
	"EntityID", "IPAddress", "UserAgent", "Device", "CreatedAt",
}

// EventLogWorkbook renders entries on a single EventLog sheet, one row per
// entry in the given order.
func EventLogWorkbook(entries []*eventlog.Entry) ([]byte, error) {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		var userID, entityID string
		if e.UserID != nil {
			userID = e.UserID.String()
		}
		if e.EntityID != nil {
			entityID = e.EntityID.String()
		}
		rows = append(rows, []any{
			e.ID.String(), userID, string(e.Type), e.Description, string(e.EntityType),
			entityID, e.IPAddress, e.UserAgent, e.Device(), e.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	return workbook(EventLogSheet, eventLogHeader, rows)
}

// BenefitsWorkbook renders the benefits report on a Benefits sheet.
func BenefitsWorkbook(rows []models.BenefitRow) ([]byte, error) {
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		record := benefitRecord(r)
		cells := make([]any, len(record))
		for i, v := range record {
			cells[i] = v
		}
		out = append(out, cells)
	}
	return workbook(BenefitsSheet, benefitHeader, out)
}

func workbook(sheet string, header []string, rows [][]any) (_ []byte, err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return nil, fmt.Errorf("size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
