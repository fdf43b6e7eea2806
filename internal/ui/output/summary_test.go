package output_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/ui/output"
)

func TestPrinter_RunSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	output.NewPrinter(&buf).RunSummary(&domain.RunResult{
		Status: domain.RunFail,
		Steps: []domain.StepRecord{
			{Index: 0, MeasureName: "Set WWR", Result: domain.StepResult{Value: domain.StepSuccess}},
			{Index: 1, MeasureDirName: "overhang", Result: domain.StepResult{
				Value:    domain.StepFail,
				Errors:   []string{"no windows"},
				Warnings: []string{"slow"},
			}},
		},
		StartedAt:   start,
		CompletedAt: start.Add(1500 * time.Millisecond),
	})

	assert.Equal(t, "✓ 000 Set WWR Success\n"+
		"✗ 001 overhang Fail\n"+
		"      ✗ no windows\n"+
		"      ! slow\n"+
		"✗ run Fail (2 steps, 1.5s)\n", buf.String())
}

func TestPrinter_MeasureInfo(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	output.NewPrinter(&buf).MeasureInfo(&domain.MeasureInfo{
		MeasureType: domain.ModelMeasure,
		ClassName:   "SetWindowToWallRatio",
		Name:        "Set WWR",
		Arguments: []domain.Argument{
			{Name: "wwr", Type: domain.ArgDouble, Required: true, DefaultValue: 0.4},
			{Name: "facade", Type: domain.ArgChoice, Choices: []string{"North", "South"}},
		},
		Outputs: []domain.OutputAttribute{{Name: "area"}},
	})

	assert.Equal(t, "Set WWR (SetWindowToWallRatio)\n"+
		"  type: ModelMeasure\n"+
		"  arguments:\n"+
		"    wwr (Double, required) default=0.4\n"+
		"    facade (Choice) choices=North|South\n"+
		"  outputs:\n"+
		"    area\n", buf.String())
}

func TestPrinter_CacheSnapshot(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	output.NewPrinter(&buf).CacheSnapshot(domain.CacheSnapshot{
		domain.NamespaceModel: {"/b.osm": "2", "/a.osm": "1"},
	})

	assert.Equal(t, "models (2)\n"+
		"  /a.osm 1\n"+
		"  /b.osm 2\n"+
		"workspaces (0)\n"+
		"measures (0)\n"+
		"measure_info (0)\n", buf.String())
}
