package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/spigell/skillmatch/internal/analysis"
	"github.com/spigell/skillmatch/internal/catalog"
)

func sampleResult(t *testing.T) *analysis.Result {
	t.Helper()

	jobs := &catalog.Jobs{Items: []*catalog.Job{
		{ID: "j1", Title: "Junior Python Developer", Employer: catalog.Employer{Name: "Acme"}, RequiredSkills: []string{"Python", "Docker"}},
		{ID: "j2", Title: "Frontend Developer", Employer: catalog.Employer{Name: "Globex"}, RequiredSkills: []string{"React", "TypeScript"}},
	}}

	result, err := analysis.New(nil, analysis.Options{}, nil).Analyze(context.Background(), "cv.txt", "Skills: Python, Docker, Leadership", jobs)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return result
}

func TestToExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := ToExcel(path, sampleResult(t)); err != nil {
		t.Fatalf("ToExcel: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 3 || got[0] != SheetRankedJobs || got[1] != SheetInsights || got[2] != SheetSkillGaps {
		t.Fatalf("unexpected sheets: %v", got)
	}

	rows, err := f.GetRows(SheetRankedJobs)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 jobs, got %d rows", len(rows))
	}
	if rows[1][1] != "j1" || rows[1][4] != catalog.LevelEntry || rows[1][5] != "100" {
		t.Fatalf("unexpected first job row: %v", rows[1])
	}
	if rows[2][8] != "React, TypeScript" {
		t.Fatalf("unexpected missing skills cell: %q", rows[2][8])
	}

	gaps, err := f.GetRows(SheetSkillGaps)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(gaps) != 3 || gaps[1][0] != "React" || gaps[1][1] != "1" {
		t.Fatalf("unexpected gap rows: %v", gaps)
	}

	readiness, err := f.GetCellValue(SheetInsights, "A3")
	if err != nil || readiness != "Readiness Score" {
		t.Fatalf("unexpected insights label %q (%v)", readiness, err)
	}
}

func TestWriteRejectsEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err == nil {
		t.Fatal("expected error for nil result")
	}
	if err := Write(&buf, sampleResult(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected workbook bytes")
	}
}
