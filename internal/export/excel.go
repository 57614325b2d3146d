// Package export writes analysis results to spreadsheets.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spigell/skillmatch/internal/analysis"
)

const (
	SheetRankedJobs = "Ranked Jobs"
	SheetInsights   = "Insights"
	SheetSkillGaps  = "Skill Gaps"
)

var rankedJobsHeader = []any{
	"Rank", "Job ID", "Title", "Employer", "Level", "Score", "Match %", "Matching Skills", "Missing Skills", "URL",
}

// ToExcel writes result to an .xlsx file at path.
func ToExcel(path string, result *analysis.Result) error {
	f, err := build(result)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Write streams the workbook to w.
func Write(w io.Writer, result *analysis.Result) error {
	f, err := build(result)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func build(result *analysis.Result) (*excelize.File, error) {
	if result == nil || result.Report == nil {
		return nil, errors.New("analysis result is empty")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetRankedJobs); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetInsights, SheetSkillGaps} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	writers := []func(*excelize.File, int, *analysis.Result) error{
		writeRankedJobs,
		writeInsights,
		writeSkillGaps,
	}
	for _, write := range writers {
		if err := write(f, header, result); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeRankedJobs(f *excelize.File, header int, result *analysis.Result) error {
	rows := [][]any{rankedJobsHeader}
	for i, m := range result.Matches {
		job := m.Item
		rows = append(rows, []any{
			i + 1,
			job.ID,
			job.Title,
			job.Employer.Name,
			job.Level(),
			m.DisplayScore,
			m.Match.MatchPercentage,
			strings.Join(m.Match.MatchingSkills, ", "),
			strings.Join(m.Match.MissingSkills, ", "),
			job.URL,
		})
	}

	if err := writeRows(f, SheetRankedJobs, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetRankedJobs, "C", "C", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetRankedJobs, "H", "I", 40); err != nil {
		return err
	}
	return styleHeader(f, SheetRankedJobs, len(rankedJobsHeader), header)
}

func writeInsights(f *excelize.File, header int, result *analysis.Result) error {
	report := result.Report
	b := report.SkillBreakdown

	rows := [][]any{
		{"Metric", "Value"},
		{"Analysis ID", result.ID},
		{"Readiness Score", report.ReadinessScore},
		{"Market Alignment", report.MarketAlignment},
		{"Total Skills", b.Total},
		{"Technical Skills", b.Technical},
		{"Soft Skills", b.Soft},
		{"Framework Skills", b.Framework},
		{"Cloud Skills", b.Cloud},
		{"Data Skills", b.Data},
	}
	if fb := result.Feedback; fb != nil {
		rows = append(rows,
			[]any{"ATS Score", fb.ATSScore},
			[]any{"Formatting Score", fb.FormattingScore},
			[]any{"Completeness Score", fb.CompletenessScore},
			[]any{"Experience Years", fb.ExperienceYears},
		)
	}

	rows = appendList(rows, "Insight", report.Insights)
	rows = appendList(rows, "Recommendation", report.Recommendations)
	rows = appendList(rows, "Career Path", report.CareerPaths)
	if result.Feedback != nil {
		rows = appendList(rows, "Suggestion", result.Feedback.Suggestions)
		rows = appendList(rows, "Strength", result.Feedback.Strengths)
	}

	if err := writeRows(f, SheetInsights, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetInsights, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetInsights, "B", "B", 90); err != nil {
		return err
	}
	return styleHeader(f, SheetInsights, 2, header)
}

func writeSkillGaps(f *excelize.File, header int, result *analysis.Result) error {
	rows := [][]any{{"Skill", "Jobs Missing It"}}
	for _, gap := range result.Report.TopSkillGaps {
		rows = append(rows, []any{gap.Skill, gap.Count})
	}

	if err := writeRows(f, SheetSkillGaps, rows); err != nil {
		return err
	}
	return styleHeader(f, SheetSkillGaps, 2, header)
}

func appendList(rows [][]any, label string, values []string) [][]any {
	for _, v := range values {
		rows = append(rows, []any{label, v})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func styleHeader(f *excelize.File, sheet string, columns, style int) error {
	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}
