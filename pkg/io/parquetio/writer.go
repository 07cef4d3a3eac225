package parquetio

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	local "github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	pw "github.com/xitongsys/parquet-go/writer"

	"github.com/wdm0006/parquetize/pkg/frame"
)

const (
	defaultRowGroupSize = 128 * 1024 * 1024
	defaultPageSize     = 8 * 1024
)

type WriterOptions struct {
	Compression  string // snappy (default), gzip, brotli, zstd, none
	RowGroupSize int64
	PageSize     int64
}

// CodecFor maps a codec name to the Parquet compression codec. Unknown names
// fail, so callers can reject a bad codec before any file is created.
func CodecFor(name string) (parquet.CompressionCodec, error) {
	switch strings.ToLower(name) {
	case "", "snappy":
		return parquet.CompressionCodec_SNAPPY, nil
	case "gzip":
		return parquet.CompressionCodec_GZIP, nil
	case "brotli":
		return parquet.CompressionCodec_BROTLI, nil
	case "zstd":
		return parquet.CompressionCodec_ZSTD, nil
	case "none", "uncompressed":
		return parquet.CompressionCodec_UNCOMPRESSED, nil
	default:
		return parquet.CompressionCodec_UNCOMPRESSED, fmt.Errorf("parquetio: unsupported compression codec %q", name)
	}
}

// tagSafeName reports whether a column name survives the schema tag grammar
// verbatim: tags split on ',' and '=', strip tabs, and trim surrounding
// whitespace. Names that don't qualify are written through the placeholder
// path in WriteAll instead.
func tagSafeName(name string) bool {
	if name == "" || strings.ContainsAny(name, ",=\t") {
		return false
	}
	return strings.TrimSpace(name) == name
}

func schemaJSON(s frame.Schema, placeholders bool) string {
	type field struct {
		Tag string `json:"Tag"`
	}
	type schema struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	sc := schema{Tag: "name=table, repetitiontype=REQUIRED"}
	for i, cs := range s.Columns {
		name := cs.Name
		if placeholders {
			name = "c" + strconv.Itoa(i)
		}
		tag := "name=" + name + ", repetitiontype=OPTIONAL, type="
		switch cs.Type {
		case frame.KindFloat:
			tag += "DOUBLE"
		case frame.KindInt:
			tag += "INT64"
		case frame.KindBool:
			tag += "BOOLEAN"
		default:
			// dictionary encoding pays off on repeated string values
			tag += "BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"
		}
		sc.Fields = append(sc.Fields, field{Tag: tag})
	}
	b, _ := json.Marshal(sc)
	return string(b)
}

// WriteAll writes a Frame to a Parquet file at path. Column statistics stay
// enabled (library default) so downstream readers can prune row groups.
func WriteAll(path string, f *frame.Frame, opt WriterOptions) error {
	codec, err := CodecFor(opt.Compression)
	if err != nil {
		return err
	}
	// any name the tag grammar cannot carry forces generated names for the
	// whole schema; the verbatim header names are restored below
	placeholders := false
	for _, cs := range f.Schema().Columns {
		if !tagSafeName(cs.Name) {
			placeholders = true
			break
		}
	}
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	w, err := pw.NewJSONWriter(schemaJSON(f.Schema(), placeholders), fw, 4)
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("parquet writer init: %w", err)
	}
	if placeholders {
		// records are matched and the footer renamed via the external names,
		// so patching them here puts the real header names in the output file
		for i, cs := range f.Schema().Columns {
			w.SchemaHandler.Infos[i+1].ExName = cs.Name
		}
		w.SchemaHandler.CreateInExMap()
	}
	w.CompressionType = codec
	if opt.RowGroupSize > 0 {
		w.RowGroupSize = opt.RowGroupSize
	} else {
		w.RowGroupSize = defaultRowGroupSize
	}
	if opt.PageSize > 0 {
		w.PageSize = opt.PageSize
	} else {
		w.PageSize = defaultPageSize
	}

	for r := 0; r < f.Rows(); r++ {
		rec := make(map[string]any, f.Cols())
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case frame.KindFloat:
				if v, ok := col.(*frame.FloatColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case frame.KindInt:
				if v, ok := col.(*frame.IntColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			case frame.KindBool:
				if v, ok := col.(*frame.BoolColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			default:
				if v, ok := col.(*frame.StringColumn).Get(r); ok {
					rec[cs.Name] = v
				}
			}
		}
		line, err := json.Marshal(rec)
		if err != nil {
			_ = fw.Close()
			return fmt.Errorf("parquet write row %d: %w", r, err)
		}
		if err := w.Write(string(line)); err != nil {
			_ = fw.Close()
			return fmt.Errorf("parquet write row %d: %w", r, err)
		}
	}
	if err := w.WriteStop(); err != nil {
		_ = fw.Close()
		return fmt.Errorf("parquet finalize: %w", err)
	}
	return fw.Close()
}
