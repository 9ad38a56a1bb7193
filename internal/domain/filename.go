package domain

import "fmt"

// Number is any value a year can be given as.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FileName returns the canonical accident file name for year, e.g.
// "accident_2013.csv.bz2". Fractional years are truncated toward zero.
func FileName[N Number](year N) string {
	return fmt.Sprintf("accident_%d.csv.bz2", int(year))
}
