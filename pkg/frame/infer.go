package frame

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var numericRe = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)

// InferKinds determines a column kind for each of ncol columns by voting over
// every record. Empty cells are nulls and do not vote. A column is numeric
// when numeric values outnumber non-numeric ones (int only if every numeric
// value is integral), boolean when all non-empty values parse as booleans,
// and string otherwise.
func InferKinds(records [][]string, ncol int) []Kind {
	kinds := make([]Kind, ncol)
	for c := 0; c < ncol; c++ {
		num, integer, boolean, str, total := 0, 0, 0, 0, 0
		for _, rec := range records {
			if c >= len(rec) {
				continue
			}
			v := strings.TrimSpace(rec[c])
			if v == "" {
				continue
			}
			total++
			if numericRe.MatchString(v) {
				num++
				if !strings.ContainsAny(v, ".eE") {
					integer++
				}
				continue
			}
			switch strings.ToLower(v) {
			case "true", "false":
				boolean++
			default:
				str++
			}
		}
		switch {
		case total == 0:
			kinds[c] = KindString
		case boolean == total:
			kinds[c] = KindBool
		case num > str:
			if integer == num {
				kinds[c] = KindInt
			} else {
				kinds[c] = KindFloat
			}
		default:
			kinds[c] = KindString
		}
	}
	return kinds
}

// FromRecords builds a Frame from a header row and row-oriented records,
// inferring each column's kind from all of its values. Column names and
// order follow the header verbatim. Cells that fail to parse as the inferred
// kind are left null, as are empty cells.
func FromRecords(header []string, records [][]string) (*Frame, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("frame: empty header")
	}
	kinds := InferKinds(records, len(header))
	s := Schema{Columns: make([]ColumnSchema, len(header))}
	for i, name := range header {
		s.Columns[i] = ColumnSchema{Name: name, Type: kinds[i], Nullable: true}
	}
	f := NewFrame(s)
	for _, rec := range records {
		f.AppendNullRow()
		row := f.Rows() - 1
		for i, cs := range s.Columns {
			if i >= len(rec) {
				continue
			}
			val := strings.TrimSpace(rec[i])
			if val == "" {
				continue
			}
			switch cs.Type {
			case KindFloat:
				if x, err := strconv.ParseFloat(val, 64); err == nil {
					_ = f.SetCell(row, cs.Name, x)
				}
			case KindInt:
				if x, err := strconv.ParseInt(val, 10, 64); err == nil {
					_ = f.SetCell(row, cs.Name, x)
				}
			case KindBool:
				if x, err := strconv.ParseBool(strings.ToLower(val)); err == nil {
					_ = f.SetCell(row, cs.Name, x)
				}
			default:
				_ = f.SetCell(row, cs.Name, val)
			}
		}
	}
	return f, nil
}
