package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/datagen/synthetic-data/internal/dataset"
)

// ErrUnsupportedFormat is returned when no sink matches a format or extension.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Options tune how sinks encode a table.
type Options struct {
	// ParquetCompression is one of snappy, zstd, gzip or none. Empty means snappy.
	ParquetCompression string
}

// Sink writes a whole table to a file.
type Sink interface {
	// Name returns the canonical format name, also used as the default extension.
	Name() string
	WriteFile(path string, t dataset.Table, opts Options) error
}

// builtInSinks stores the available sinks.
var builtInSinks = []Sink{
	CSVSink{},
	ParquetSink{},
	JSONLinesSink{},
	JSONSink{},
	SQLiteSink{},
}

// GetSinkByName fetches a registered sink by format name or alias.
func GetSinkByName(name string) Sink {
	n := NormalizeFormatName(name)
	for _, s := range builtInSinks {
		if s.Name() == n {
			return s
		}
	}
	return nil
}

// aliasMap provides synonyms for format names, including file extensions.
var aliasMap = map[string]string{
	"pq":      "parquet",
	"ndjson":  "jsonl",
	"db":      "sqlite",
	"sqlite3": "sqlite",
}

// NormalizeFormatName lowers, strips a leading dot and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// ResolveFormat returns the canonical name of the sink registered for name.
func ResolveFormat(name string) (string, error) {
	if s := GetSinkByName(name); s != nil {
		return s.Name(), nil
	}
	return "", unsupported(name)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := filepath.Ext(path)
	if s := GetSinkByName(ext); ext != "" && s != nil {
		return s.Name(), nil
	}
	return "", unsupported(ext)
}

// AvailableFormatNames returns the canonical sink names.
func AvailableFormatNames() []string {
	names := make([]string, 0, len(builtInSinks))
	for _, s := range builtInSinks {
		names = append(names, s.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteFile writes t to path with the named format. An empty format infers
// the sink from the path's extension. Missing parent directories are created.
func WriteFile(path, format string, t dataset.Table, opts Options) error {
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		format = f
	}
	sink := GetSinkByName(format)
	if sink == nil {
		return unsupported(format)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := sink.WriteFile(path, t, opts); err != nil {
		return fmt.Errorf("write %s %s: %w", sink.Name(), path, err)
	}
	return nil
}

// unsupported enriches ErrUnsupportedFormat with the available formats and aliases
func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
