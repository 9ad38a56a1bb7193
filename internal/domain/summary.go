package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"
)

type monthYear struct {
	month int
	year  int
}

// SummaryTable is a month × year accident count table. Rows are months,
// columns are years, both ascending. Cells for month/year pairs without
// accidents are absent, not zero.
type SummaryTable struct {
	Years  []int
	Months []int
	counts map[monthYear]int
}

// Summarize counts accidents per (year, month) across the given datasets and
// pivots the result so each year becomes a column. Nil datasets are skipped.
func Summarize(datasets []*YearDataset) SummaryTable {
	t := SummaryTable{counts: make(map[monthYear]int)}
	for _, d := range datasets {
		if d == nil {
			continue
		}
		for _, m := range d.Months {
			k := monthYear{month: m, year: d.Year}
			if _, ok := t.counts[k]; !ok {
				if !slices.Contains(t.Years, d.Year) {
					t.Years = append(t.Years, d.Year)
				}
				if !slices.Contains(t.Months, m) {
					t.Months = append(t.Months, m)
				}
			}
			t.counts[k]++
		}
	}
	slices.Sort(t.Years)
	slices.Sort(t.Months)
	return t
}

// Count returns the number of accidents for month in year. ok is false when
// no accident was recorded for that pair.
func (t SummaryTable) Count(month, year int) (n int, ok bool) {
	n, ok = t.counts[monthYear{month: month, year: year}]
	return n, ok
}

// Empty reports whether the table has no rows.
func (t SummaryTable) Empty() bool { return len(t.Months) == 0 }

// WriteText writes the table as aligned text. Absent cells are left blank.
func (t SummaryTable) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, ColMonth)
	for _, y := range t.Years {
		fmt.Fprintf(tw, "\t%d", y)
	}
	fmt.Fprintln(tw, "\t")
	for _, m := range t.Months {
		fmt.Fprint(tw, m)
		for _, y := range t.Years {
			if n, ok := t.Count(m, y); ok {
				fmt.Fprintf(tw, "\t%d", n)
			} else {
				fmt.Fprint(tw, "\t")
			}
		}
		fmt.Fprintln(tw, "\t")
	}
	return tw.Flush()
}

// MarshalJSON encodes the table as an array of rows, one per month:
//
//	[{"MONTH":1,"2013":2230,"2014":2168}, ...]
//
// Absent cells are omitted from their row object.
func (t SummaryTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, m := range t.Months {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"` + ColMonth + `":`)
		buf.WriteString(strconv.Itoa(m))
		for _, y := range t.Years {
			n, ok := t.Count(m, y)
			if !ok {
				continue
			}
			key, err := json.Marshal(strconv.Itoa(y))
			if err != nil {
				return nil, err
			}
			buf.WriteByte(',')
			buf.Write(key)
			buf.WriteByte(':')
			buf.WriteString(strconv.Itoa(n))
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}
