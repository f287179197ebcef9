package output

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/scenario"
)

// ReportWriter is the interface for writing scenario results.
// Different implementations handle different report formats.
type ReportWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r scenario.Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and writes the summary.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewReportWriter returns the writer for format.
func NewReportWriter(w io.Writer, format config.ReportFormat, verbosity int) ReportWriter {
	if format == config.JSONReport {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, verbosity)
}

// TextWriter writes one line per result and a summary on Close.
type TextWriter struct {
	w         io.Writer
	verbosity int
	passed    int
	failed    int
}

// NewTextWriter creates a new text writer. At verbosity 0 only failures are
// written; at 2 the final board of every scenario is added.
func NewTextWriter(w io.Writer, verbosity int) *TextWriter {
	return &TextWriter{w: w, verbosity: verbosity}
}

// WriteResult writes a PASS or FAIL line for r.
func (tw *TextWriter) WriteResult(r scenario.Result) error {
	if r.Passed() {
		tw.passed++
		if tw.verbosity < 1 {
			return nil
		}
		if _, err := fmt.Fprintf(tw.w, "PASS %s (%d plies, %s)\n", r.Scenario, r.Plies, r.Status); err != nil {
			return err
		}
	} else {
		tw.failed++
		if _, err := fmt.Fprintf(tw.w, "FAIL %s\n", r.Scenario); err != nil {
			return err
		}
		if len(r.Failures) > 0 {
			for _, f := range r.Failures {
				if _, err := fmt.Fprintf(tw.w, "    %s\n", f); err != nil {
					return err
				}
			}
		} else if _, err := fmt.Fprintf(tw.w, "    %v\n", r.Err); err != nil {
			return err
		}
	}

	if tw.verbosity >= 2 && r.Board != "" {
		_, err := fmt.Fprintf(tw.w, "    final: %s\n", r.Board)
		return err
	}
	return nil
}

// Flush is a no-op; results are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close writes the totals.
func (tw *TextWriter) Close() error {
	_, err := fmt.Fprintf(tw.w, "%d passed, %d failed\n", tw.passed, tw.failed)
	return err
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a single report on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []*JSONResult
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as a report on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]*JSONResult, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result
// immediately, one object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(r scenario.Result) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(ResultToJSON(r))
	}

	jw.results = append(jw.results, ResultToJSON(r))
	return nil
}

// Flush writes all buffered results as a JSON report.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	report := &JSONReport{Results: jw.results}
	for _, r := range jw.results {
		if r.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(report)

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
