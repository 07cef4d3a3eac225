package parquetio

import (
	"errors"
	"io"
	"os"

	parquet "github.com/segmentio/parquet-go"

	"github.com/wdm0006/parquetize/pkg/frame"
)

// Reader reads a Parquet file back into a Frame. It uses an independent
// implementation from the writer, which keeps verification honest: a file we
// wrote is only considered good if a second library can read it.
type Reader struct {
	file   *os.File
	reader *parquet.GenericReader[map[string]any]
	schema frame.Schema
}

func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := parquet.NewGenericReader[map[string]any](f)
	return &Reader{file: f, reader: r, schema: schemaFromParquet(r.Schema())}, nil
}

func (r *Reader) Close() error {
	_ = r.reader.Close()
	return r.file.Close()
}

func (r *Reader) Schema() frame.Schema { return r.schema }

func (r *Reader) ReadAll() (*frame.Frame, error) {
	f := frame.NewFrame(r.schema)
	buf := make([]map[string]any, 1024)
	for {
		n, err := r.reader.Read(buf)
		for i := 0; i < n; i++ {
			f.AppendNullRow()
			setRow(f, f.Rows()-1, buf[i])
			buf[i] = nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if n == 0 {
			break
		}
	}
	return f, nil
}

func schemaFromParquet(s *parquet.Schema) frame.Schema {
	fields := s.Fields()
	out := frame.Schema{Columns: make([]frame.ColumnSchema, len(fields))}
	for i, fld := range fields {
		kind := frame.KindString
		if lt := fld.Type(); lt != nil {
			switch lt.Kind() {
			case parquet.Boolean:
				kind = frame.KindBool
			case parquet.Int32, parquet.Int64:
				kind = frame.KindInt
			case parquet.Float, parquet.Double:
				kind = frame.KindFloat
			}
		}
		out.Columns[i] = frame.ColumnSchema{Name: fld.Name(), Type: kind, Nullable: fld.Optional()}
	}
	return out
}

func setRow(f *frame.Frame, row int, m map[string]any) {
	for _, cs := range f.Schema().Columns {
		v, ok := m[cs.Name]
		if !ok || v == nil {
			continue
		}
		switch cs.Type {
		case frame.KindFloat:
			switch t := v.(type) {
			case float64:
				_ = f.SetCell(row, cs.Name, t)
			case float32:
				_ = f.SetCell(row, cs.Name, float64(t))
			case int64:
				_ = f.SetCell(row, cs.Name, float64(t))
			}
		case frame.KindInt:
			switch t := v.(type) {
			case int64:
				_ = f.SetCell(row, cs.Name, t)
			case int32:
				_ = f.SetCell(row, cs.Name, int64(t))
			case float64:
				_ = f.SetCell(row, cs.Name, int64(t))
			}
		case frame.KindBool:
			if t, ok := v.(bool); ok {
				_ = f.SetCell(row, cs.Name, t)
			}
		default:
			switch t := v.(type) {
			case string:
				_ = f.SetCell(row, cs.Name, t)
			case []byte:
				_ = f.SetCell(row, cs.Name, string(t))
			}
		}
	}
}
