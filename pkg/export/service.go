// Package export builds downloadable result workbooks for experiments.
package export

import (
	"context"
	"fmt"

	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/pkg/analysis"
	"github.com/variantlab/abtest/pkg/experiments"
	"github.com/xuri/excelize/v2"
)

// Service generates XLSX exports of experiment results
type Service struct {
	experiments *experiments.Service
	analysis    *analysis.Service
}

// NewService creates a new export service
func NewService(experimentService *experiments.Service, analysisService *analysis.Service) *Service {
	return &Service{experiments: experimentService, analysis: analysisService}
}

// BuildResultsWorkbook builds an XLSX workbook with a summary sheet and a
// per-variant results sheet for an experiment. The caller owns closing the
// returned file.
func (s *Service) BuildResultsWorkbook(ctx context.Context, experimentID int) (*excelize.File, error) {
	exp, err := s.experiments.FindByID(ctx, experimentID)
	if err != nil {
		return nil, err
	}

	report, err := s.experiments.Results(ctx, experimentID)
	if err != nil {
		return nil, err
	}

	significance, err := s.analysis.CalculateStatisticalSignificance(ctx, experimentID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	if err := s.writeSummarySheet(f, exp, report); err != nil {
		f.Close()
		return nil, err
	}
	if err := s.writeVariantsSheet(f, report, significance); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func (s *Service) writeSummarySheet(f *excelize.File, exp *ent.Experiment, report *experiments.ExperimentReport) error {
	const sheetName = "Summary"

	// Rename the default sheet so the workbook has no leftover Sheet1
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	rows := [][2]interface{}{
		{"Experiment", exp.Name},
		{"Type", string(exp.Type)},
		{"Status", string(exp.Status)},
		{"Hypothesis", exp.Hypothesis},
		{"Primary Metric", exp.PrimaryMetric},
		{"Total Assignments", report.TotalAssignments},
	}
	if exp.StartDate != nil {
		rows = append(rows, [2]interface{}{"Start Date", exp.StartDate.Format("2006-01-02 15:04")})
	}
	if exp.EndDate != nil {
		rows = append(rows, [2]interface{}{"End Date", exp.EndDate.Format("2006-01-02 15:04")})
	}

	for i, row := range rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+1), row[1])
	}

	f.SetColWidth(sheetName, "A", "A", 20)
	f.SetColWidth(sheetName, "B", "B", 40)

	return nil
}

func (s *Service) writeVariantsSheet(f *excelize.File, report *experiments.ExperimentReport, significance *analysis.SignificanceReport) error {
	const sheetName = "Variants"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	headers := []string{
		"Variant", "Control", "Winner", "Assignments", "Impressions",
		"Interactions", "Conversions", "Conversion Rate", "Revenue",
		"Improvement", "Confidence Level", "Significant",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	testByVariant := make(map[int]analysis.VariantSignificance, len(significance.Results))
	for _, r := range significance.Results {
		testByVariant[r.VariantID] = r
	}

	for rowIdx, v := range report.Variants {
		row := rowIdx + 2
		test := testByVariant[v.VariantID]

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), v.VariantName)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), v.IsControl)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), v.IsWinner)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), v.Assignments)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), v.Impressions)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), v.Interactions)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), v.Conversions)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), v.ConversionRate)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), v.Revenue)
		if !v.IsControl {
			f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), test.Improvement)
			f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), test.ConfidenceLevel)
			f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), test.Significant)
		}
	}

	for i := 0; i < len(headers); i++ {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 16)
	}

	f.SetActiveSheet(index)
	return nil
}
