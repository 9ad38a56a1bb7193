// Package domain models FARS (Fatality Analysis Reporting System) accident data.
//
// # Data Source
//
// FARS is a yearly census of fatal motor vehicle crashes in the United States,
// published by NHTSA. Each year ships an accident file with one row per crash.
// This service expects those files in a single data directory, named
//
//	accident_<year>.csv.bz2   →  e.g. accident_2014.csv.bz2
//
// See [FileName]. Files are comma-separated with a header row and are usually
// bzip2-compressed, though gzip, zstd and plain text are accepted as well.
//
// # Columns
//
// Only four columns are modeled; the rest are kept verbatim in column order and
// can be looked up by name with [Dataset.Value]:
//
//	STATE     integer state code (FIPS), e.g. 1 = Alabama, 6 = California
//	MONTH     integer 1–12
//	LATITUDE  decimal degrees
//	LONGITUD  decimal degrees (FARS spells it without the trailing E)
//
// # Unknown Values
//
// FARS encodes unknown coordinates with out-of-range numbers rather than empty
// cells:
//
//	LATITUDE  99.9999     (anything > 90 is unknown)
//	LONGITUD  999.9999    (anything > 900 is unknown)
//
// These are replaced by NaN before plotting. See [CleanseCoordinates].
//
// # Summaries
//
// [Summarize] pivots month projections of several years into a month × year
// count table. A month with no accidents in a year has no cell at all; it is
// never reported as zero.
package domain
