package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/datagen/synthetic-data/internal/dataset"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"
)

// ParquetSink writes the table as a single parquet file.
type ParquetSink struct{}

func (ParquetSink) Name() string { return "parquet" }

func (ParquetSink) WriteFile(path string, t dataset.Table, opts Options) error {
	codec, err := CompressionCodec(opts.ParquetCompression)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := dataset.WriteParquet(f, t, parquet.Compression(codec)); err != nil {
		return err
	}
	return f.Close()
}

// CompressionCodec maps a compression name onto a parquet codec.
func CompressionCodec(name string) (compress.Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "snappy":
		return &parquet.Snappy, nil
	case "zstd":
		return &parquet.Zstd, nil
	case "gzip":
		return &parquet.Gzip, nil
	case "none", "uncompressed":
		return &parquet.Uncompressed, nil
	default:
		return nil, fmt.Errorf("unsupported parquet compression %q", name)
	}
}
