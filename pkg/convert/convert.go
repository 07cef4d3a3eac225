// Package convert turns a CSV file into a Parquet file in one eager pass:
// parse the whole input into a row-oriented dataset, build a typed columnar
// frame from it, serialize the frame with the requested codec, and report
// size statistics.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wdm0006/parquetize/pkg/frame"
	"github.com/wdm0006/parquetize/pkg/io/csvio"
	"github.com/wdm0006/parquetize/pkg/io/parquetio"
)

// FormatVersion tags accepted on the config surface. The writer library pins
// its own on-disk format; the tag is validated and echoed in the summary for
// compatibility with existing configs.
var formatVersions = map[string]bool{"1.0": true, "2.4": true, "2.6": true}

const DefaultFormatVersion = "2.6"

type Options struct {
	InputPath     string
	OutputPath    string    // empty: input path with extension replaced by .parquet
	Compression   string    // empty: snappy
	FormatVersion string    // empty: 2.6
	Delimiter     rune      // 0: ','
	Out           io.Writer // progress/summary destination; nil: os.Stdout
}

type Stats struct {
	Rows        int
	Columns     int
	ColumnNames []string
	InputBytes  int64
	OutputBytes int64
	Ratio       float64 // percentage size reduction, negative if output grew
	SavedBytes  int64
}

// OutputPathFor derives the default output path: the input path with its
// extension (and a trailing .gz, if any) replaced by .parquet.
func OutputPathFor(inputPath string) string {
	p := strings.TrimSuffix(inputPath, ".gz")
	ext := filepath.Ext(p)
	return strings.TrimSuffix(p, ext) + ".parquet"
}

// Run performs one conversion. It validates the codec and format version
// before touching the filesystem, so a bad configuration never creates an
// output file, and it removes the output file on a write failure so an error
// always means "no usable output".
func Run(opt Options) (*Stats, error) {
	out := opt.Out
	if out == nil {
		out = os.Stdout
	}
	if opt.InputPath == "" {
		return nil, fmt.Errorf("convert: input path is required")
	}
	if _, err := parquetio.CodecFor(opt.Compression); err != nil {
		return nil, err
	}
	version := opt.FormatVersion
	if version == "" {
		version = DefaultFormatVersion
	}
	if !formatVersions[version] {
		return nil, fmt.Errorf("convert: unsupported format version %q", version)
	}
	outputPath := opt.OutputPath
	if outputPath == "" {
		outputPath = OutputPathFor(opt.InputPath)
	}

	fmt.Fprintf(out, "Reading CSV from: %s\n", opt.InputPath)
	ds, err := csvio.ReadAll(opt.InputPath, csvio.Options{Delimiter: opt.Delimiter})
	if err != nil {
		return nil, err
	}
	f, err := frame.FromRecords(ds.Header, ds.Records)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Loaded %d rows and %d columns\n", f.Rows(), f.Cols())
	fmt.Fprintf(out, "Columns: %s\n", strings.Join(f.ColumnNames(), ", "))

	codecName := strings.ToLower(opt.Compression)
	if codecName == "" {
		codecName = "snappy"
	}
	fmt.Fprintf(out, "Writing Parquet to: %s (codec=%s, format=%s)\n", outputPath, codecName, version)
	if err := parquetio.WriteAll(outputPath, f, parquetio.WriterOptions{Compression: opt.Compression}); err != nil {
		_ = os.Remove(outputPath)
		return nil, err
	}

	st := &Stats{Rows: f.Rows(), Columns: f.Cols(), ColumnNames: f.ColumnNames()}
	if fi, err := os.Stat(opt.InputPath); err == nil {
		st.InputBytes = fi.Size()
	}
	fi, err := os.Stat(outputPath)
	if err != nil {
		return nil, err
	}
	st.OutputBytes = fi.Size()
	st.SavedBytes = st.InputBytes - st.OutputBytes
	if st.InputBytes > 0 {
		st.Ratio = (1 - float64(st.OutputBytes)/float64(st.InputBytes)) * 100
	}

	fmt.Fprintf(out, "\nConversion complete!\n")
	fmt.Fprintf(out, "CSV size: %.2f MB\n", mb(st.InputBytes))
	fmt.Fprintf(out, "Parquet size: %.2f MB\n", mb(st.OutputBytes))
	fmt.Fprintf(out, "Compression ratio: %.2f%%\n", st.Ratio)
	fmt.Fprintf(out, "Space saved: %.2f MB\n", mb(st.SavedBytes))
	return st, nil
}

func mb(n int64) float64 { return float64(n) / (1024 * 1024) }
