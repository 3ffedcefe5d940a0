package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/datagen/synthetic-data/internal/domain"
	"gopkg.in/yaml.v3"
)

// ReportFormatter renders the summary of a generation run.
type ReportFormatter interface {
	Format(report *domain.RunReport) ([]byte, error)
	// Name returns a short identifier for flags and logging.
	Name() string
}

// builtInReportFormatters stores the available run report formatters.
var builtInReportFormatters = []ReportFormatter{
	ConsoleReportFormatter{},
	JSONReportFormatter{},
	CSVReportFormatter{},
}

// GetReportFormatter fetches a registered report formatter.
func GetReportFormatter(name string) (ReportFormatter, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" || n == "text" {
		n = "console"
	}
	names := make([]string, 0, len(builtInReportFormatters))
	for _, f := range builtInReportFormatters {
		if f.Name() == n {
			return f, nil
		}
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return nil, fmt.Errorf("%w: report %q. Try one of: %s", ErrUnsupportedFormat, name, strings.Join(names, ", "))
}

// sortedResults orders results by scenario name for deterministic output
func sortedResults(report *domain.RunReport) []domain.GenerationResult {
	results := append([]domain.GenerationResult(nil), report.Results...)
	sort.Slice(results, func(i, j int) bool { return results[i].Scenario < results[j].Scenario })
	return results
}

// ConsoleReportFormatter prints an aligned plain text summary.
type ConsoleReportFormatter struct{}

func (ConsoleReportFormatter) Name() string { return "console" }

func (ConsoleReportFormatter) Format(report *domain.RunReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SYNTHETIC DATA GENERATION SUMMARY")
	fmt.Fprintln(&buf, "=================================")
	if report.Dir != "" {
		fmt.Fprintf(&buf, "Output directory: %s\n", report.Dir)
	}
	fmt.Fprintln(&buf)
	for _, r := range sortedResults(report) {
		fmt.Fprintf(&buf, "%-18s %10s rows  %2d cols  %-8s %8s  %s\n",
			r.Scenario, FormatRows(r.Rows), r.Columns, r.Format, FormatDuration(r.Duration), r.Path)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total: %s rows in %d tables\n", FormatRows(report.TotalRows()), len(report.Results))
	return buf.Bytes(), nil
}

// JSONReportFormatter serializes the run report as pretty-printed JSON.
type JSONReportFormatter struct{}

func (JSONReportFormatter) Name() string { return "json" }

func (JSONReportFormatter) Format(report *domain.RunReport) ([]byte, error) {
	out := *report
	out.Results = sortedResults(report)
	return json.MarshalIndent(out, "", "  ")
}

// CSVReportFormatter emits one line per generated table.
type CSVReportFormatter struct{}

func (CSVReportFormatter) Name() string { return "csv" }

func (CSVReportFormatter) Format(report *domain.RunReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Scenario", "Format", "Rows", "Columns", "DurationMs", "Path"}); err != nil {
		return nil, err
	}
	for _, r := range sortedResults(report) {
		row := []string{
			r.Scenario,
			r.Format,
			intToString(r.Rows),
			intToString(r.Columns),
			intToString(int(r.Duration.Milliseconds())),
			r.Path,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// SaveConfiguration writes config as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
