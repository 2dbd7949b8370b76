package diag

import (
	"context"
	"fmt"
	"log/slog"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Diagnostic is one recoverable finding: a skipped unit of input or an
// intentional removal.
type Diagnostic struct {
	Severity Severity
	Pointer  string
	Message  string
}

func (d Diagnostic) String() string {
	if d.Pointer == "" {
		return d.Message
	}
	return d.Pointer + ": " + d.Message
}

// Diagnostics accumulates findings during a generation pass so they can be
// surfaced once at the end of the run. A nil *Diagnostics discards everything.
type Diagnostics struct {
	items []Diagnostic
}

func New() *Diagnostics {
	return &Diagnostics{}
}

func (d *Diagnostics) Infof(pointer, format string, args ...any) {
	d.add(SeverityInfo, pointer, fmt.Sprintf(format, args...))
}

func (d *Diagnostics) Warnf(pointer, format string, args ...any) {
	d.add(SeverityWarning, pointer, fmt.Sprintf(format, args...))
}

func (d *Diagnostics) add(sev Severity, pointer, msg string) {
	if d == nil {
		return
	}
	d.items = append(d.items, Diagnostic{Severity: sev, Pointer: pointer, Message: msg})
}

// All returns the accumulated diagnostics in recording order.
func (d *Diagnostics) All() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.items
}

// Warnings returns only warning-level diagnostics.
func (d *Diagnostics) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, item := range d.All() {
		if item.Severity == SeverityWarning {
			out = append(out, item)
		}
	}
	return out
}

func (d *Diagnostics) Len() int {
	return len(d.All())
}

// Log writes every diagnostic to logger.
func (d *Diagnostics) Log(logger *slog.Logger) {
	for _, item := range d.All() {
		level := slog.LevelInfo
		if item.Severity == SeverityWarning {
			level = slog.LevelWarn
		}
		if item.Pointer != "" {
			logger.Log(context.Background(), level, item.Message, "pointer", item.Pointer)
			continue
		}
		logger.Log(context.Background(), level, item.Message)
	}
}
