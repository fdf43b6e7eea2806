package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/ui/style"
)

// Printer renders run results and measure metadata for humans.
type Printer struct {
	out *termenv.Output
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: New(w)}
}

func (p *Printer) colored(s string, c lipgloss.Color) string {
	return p.out.String(s).Foreground(termenv.RGBColor(string(c))).String()
}

func (p *Printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// RunSummary prints one line per step followed by the run status.
func (p *Printer) RunSummary(res *domain.RunResult) {
	if res == nil {
		return
	}
	for _, step := range res.Steps {
		icon, color := style.StepIcon(step.Result.Value)
		name := step.MeasureName
		if name == "" {
			name = step.MeasureDirName
		}
		p.line("%s %03d %s %s", p.colored(icon, color), step.Index, name,
			p.colored(string(step.Result.Value), style.Slate))
		for _, msg := range step.Result.Errors {
			p.line("      %s %s", p.colored(style.Cross, style.Red), msg)
		}
		for _, msg := range step.Result.Warnings {
			p.line("      %s %s", p.colored(style.Warning, style.Yellow), msg)
		}
	}

	icon, color := style.RunIcon(res.Status)
	elapsed := res.CompletedAt.Sub(res.StartedAt).Round(time.Millisecond)
	p.line("%s run %s (%d steps, %s)", p.colored(icon, color), res.Status, len(res.Steps), elapsed)
}

// MeasureInfo prints a measure's metadata and argument table.
func (p *Printer) MeasureInfo(info *domain.MeasureInfo) {
	if info == nil {
		return
	}
	p.line("%s %s", p.colored(info.Name, style.Iris), p.colored("("+info.ClassName+")", style.Slate))
	p.line("  type: %s", info.MeasureType)
	if info.Description != "" {
		p.line("  description: %s", info.Description)
	}
	if info.Taxonomy != "" {
		p.line("  taxonomy: %s", info.Taxonomy)
	}
	if len(info.Arguments) > 0 {
		p.line("  arguments:")
		for _, arg := range info.Arguments {
			p.line("    %s", argumentLine(arg))
		}
	}
	if len(info.Outputs) > 0 {
		p.line("  outputs:")
		for _, out := range info.Outputs {
			p.line("    %s", out.Name)
		}
	}
}

func argumentLine(arg domain.Argument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s", arg.Name, arg.Type)
	if arg.Required {
		b.WriteString(", required")
	}
	b.WriteString(")")
	if arg.DefaultValue != nil {
		fmt.Fprintf(&b, " default=%v", arg.DefaultValue)
	}
	if len(arg.Choices) > 0 {
		fmt.Fprintf(&b, " choices=%s", strings.Join(arg.Choices, "|"))
	}
	return b.String()
}

// CacheSnapshot prints every cached path with its checksum, grouped by namespace.
func (p *Printer) CacheSnapshot(snap domain.CacheSnapshot) {
	for _, ns := range []domain.CacheNamespace{
		domain.NamespaceModel,
		domain.NamespaceWorkspace,
		domain.NamespaceMeasure,
		domain.NamespaceMeasureInfo,
	} {
		paths := snap.Paths(ns)
		p.line("%s (%d)", p.colored(string(ns), style.Iris), len(paths))
		for _, path := range paths {
			p.line("  %s %s", path, p.colored(snap[ns][path], style.Slate))
		}
	}
}
