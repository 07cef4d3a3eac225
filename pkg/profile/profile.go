// Package profile summarizes a Frame column by column: value and null
// counts, min/max/mean for numeric columns, true/false splits for booleans,
// and top-K frequent values for strings. The string frequencies double as a
// cardinality hint for how well dictionary encoding will pay off.
package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/wdm0006/parquetize/pkg/frame"
)

type NumStats struct {
	Count int
	Nulls int
	Min   float64
	Max   float64
	Sum   float64
}

type BoolStats struct {
	Count int
	Nulls int
	True  int
	False int
}

type StringStats struct {
	Count int
	Nulls int
	Freqs map[string]int
}

type ColumnProfile struct {
	Name string
	Kind frame.Kind
	Num  *NumStats
	Bool *BoolStats
	Str  *StringStats
}

// Collect profiles every column of f in one pass.
func Collect(f *frame.Frame) []ColumnProfile {
	cols := make([]ColumnProfile, 0, f.Cols())
	for _, cs := range f.Schema().Columns {
		col, _ := f.ColumnByName(cs.Name)
		cp := ColumnProfile{Name: cs.Name, Kind: cs.Type}
		switch c := col.(type) {
		case *frame.FloatColumn:
			cp.Num = &NumStats{Min: math.Inf(1), Max: math.Inf(-1)}
			for i := 0; i < c.Len(); i++ {
				v, ok := c.Get(i)
				if !ok {
					cp.Num.Nulls++
					continue
				}
				cp.Num.Count++
				cp.Num.Min = math.Min(cp.Num.Min, v)
				cp.Num.Max = math.Max(cp.Num.Max, v)
				cp.Num.Sum += v
			}
		case *frame.IntColumn:
			cp.Num = &NumStats{Min: math.Inf(1), Max: math.Inf(-1)}
			for i := 0; i < c.Len(); i++ {
				v, ok := c.Get(i)
				if !ok {
					cp.Num.Nulls++
					continue
				}
				fv := float64(v)
				cp.Num.Count++
				cp.Num.Min = math.Min(cp.Num.Min, fv)
				cp.Num.Max = math.Max(cp.Num.Max, fv)
				cp.Num.Sum += fv
			}
		case *frame.BoolColumn:
			cp.Bool = &BoolStats{}
			for i := 0; i < c.Len(); i++ {
				v, ok := c.Get(i)
				if !ok {
					cp.Bool.Nulls++
					continue
				}
				cp.Bool.Count++
				if v {
					cp.Bool.True++
				} else {
					cp.Bool.False++
				}
			}
		case *frame.StringColumn:
			cp.Str = &StringStats{Freqs: make(map[string]int)}
			for i := 0; i < c.Len(); i++ {
				v, ok := c.Get(i)
				if !ok {
					cp.Str.Nulls++
					continue
				}
				cp.Str.Count++
				cp.Str.Freqs[v]++
			}
		}
		cols = append(cols, cp)
	}
	return cols
}

// ReportText renders profiles as plain text, listing at most topK frequent
// values per string column.
func ReportText(cols []ColumnProfile, topK int) string {
	var b strings.Builder
	b.WriteString("Column profile\n")
	for _, cp := range cols {
		fmt.Fprintf(&b, "- %s (%s): ", cp.Name, cp.Kind)
		switch {
		case cp.Num != nil:
			mean := 0.0
			if cp.Num.Count > 0 {
				mean = cp.Num.Sum / float64(cp.Num.Count)
			}
			fmt.Fprintf(&b, "count=%d nulls=%d min=%.6g max=%.6g mean=%.6g\n",
				cp.Num.Count, cp.Num.Nulls, cp.Num.Min, cp.Num.Max, mean)
		case cp.Bool != nil:
			fmt.Fprintf(&b, "count=%d nulls=%d true=%d false=%d\n",
				cp.Bool.Count, cp.Bool.Nulls, cp.Bool.True, cp.Bool.False)
		case cp.Str != nil:
			fmt.Fprintf(&b, "count=%d nulls=%d distinct=%d\n",
				cp.Str.Count, cp.Str.Nulls, len(cp.Str.Freqs))
			type kv struct {
				k string
				v int
			}
			arr := make([]kv, 0, len(cp.Str.Freqs))
			for k, v := range cp.Str.Freqs {
				arr = append(arr, kv{k, v})
			}
			sort.Slice(arr, func(i, j int) bool {
				if arr[i].v != arr[j].v {
					return arr[i].v > arr[j].v
				}
				return arr[i].k < arr[j].k
			})
			n := topK
			if n <= 0 || n > len(arr) {
				n = len(arr)
			}
			for i := 0; i < n; i++ {
				fmt.Fprintf(&b, "    %q: %d\n", arr[i].k, arr[i].v)
			}
		default:
			b.WriteString("\n")
		}
	}
	return b.String()
}
