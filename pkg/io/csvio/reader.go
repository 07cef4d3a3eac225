// Package csvio loads delimited text files into a row-oriented Dataset.
// Type inference and columnar conversion happen separately in pkg/frame, so
// alternate input formats can feed the same conversion path.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/wdm0006/parquetize/pkg/io/ioutils"
)

type Options struct {
	Delimiter rune // 0 means ','
}

// Dataset is the row-oriented form of a parsed file: a header row plus one
// string record per data row, both in file order.
type Dataset struct {
	Header  []string
	Records [][]string
}

func (d *Dataset) Rows() int { return len(d.Records) }
func (d *Dataset) Cols() int { return len(d.Header) }

// ReadAll eagerly parses the whole file at path. The first record is taken
// as the header; a BOM on the first header cell is stripped and all cells are
// coerced to valid UTF-8. Ragged rows surface encoding/csv's own error.
func ReadAll(path string, opt Options) (*Dataset, error) {
	rc, err := ioutils.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return readAll(rc, opt)
}

func readAll(r io.Reader, opt Options) (*Dataset, error) {
	rr := csv.NewReader(r)
	if opt.Delimiter != 0 {
		rr.Comma = opt.Delimiter
	}

	header, err := rr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: empty input, expected a header row")
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.ToValidUTF8(header[i], "?")
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records [][]string
	for {
		rec, err := rr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := range rec {
			rec[i] = strings.ToValidUTF8(rec[i], "?")
		}
		records = append(records, rec)
	}
	return &Dataset{Header: header, Records: records}, nil
}
