// Package dataset loads the sleep-health CSV into an in-memory table and
// derives the categorical sleep-quality label. The Dataset is built once at
// startup and is read-only afterwards; all numeric access parses columns by
// header name on demand.
package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Column names expected in the source file. Anything else present in the
// header is carried along untouched for the table view.
const (
	QualityColumn          = "Quality of Sleep"
	CategoryColumn         = "Sleep Quality Category"
	GenderColumn           = "Gender"
	SleepDurationColumn    = "Sleep Duration"
	PhysicalActivityColumn = "Physical Activity Level"
	StressLevelColumn      = "Stress Level"
	HeartRateColumn        = "Heart Rate"
	DailyStepsColumn       = "Daily Steps"
)

// RadialFeatures are the six numeric columns summarized by the radial chart,
// in display order.
var RadialFeatures = []string{
	SleepDurationColumn,
	QualityColumn,
	PhysicalActivityColumn,
	StressLevelColumn,
	HeartRateColumn,
	DailyStepsColumn,
}

// ErrNoData is returned by operations that require at least one record.
var ErrNoData = errors.New("dataset has no records")

// Record is one row of the source file, field order matching Dataset.Columns.
type Record []string

// Dataset is the validated, ordered collection of records.
type Dataset struct {
	Columns []string
	Records []Record

	// Dropped counts rows discarded at load time for missing fields.
	Dropped int
}

// Load reads a comma-delimited UTF-8 file with a header row into a Dataset.
// Rows with a wrong field count or any empty field are dropped, not errors.
// Callers distinguish a missing file from other failures via IsNotFound.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()
	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return ds, nil
}

// Read parses CSV content from r. Split out of Load so tests can feed
// in-memory data without touching the filesystem.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	ds := &Dataset{Columns: header}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse row: %w", err)
		}
		if len(row) != len(header) || incomplete(row) {
			ds.Dropped++
			continue
		}
		rec := make(Record, len(row))
		copy(rec, row)
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

func incomplete(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err from Load means the file does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Empty reports whether the dataset holds no records. A nil Dataset counts
// as empty so the terminal "load failed" state needs no special casing.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Records) == 0
}

// Len returns the number of retained records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Head returns a view of the first n records, sharing the backing slices.
func (d *Dataset) Head(n int) *Dataset {
	if d == nil {
		return nil
	}
	if n > len(d.Records) {
		n = len(d.Records)
	}
	return &Dataset{Columns: d.Columns, Records: d.Records[:n]}
}

func (d *Dataset) columnIndex(name string) int {
	if d == nil {
		return -1
	}
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Strings returns all values of the named column in record order.
func (d *Dataset) Strings(name string) ([]string, error) {
	ix := d.columnIndex(name)
	if ix < 0 {
		return nil, fmt.Errorf("no column %q", name)
	}
	out := make([]string, len(d.Records))
	for i, rec := range d.Records {
		out[i] = rec[ix]
	}
	return out, nil
}

// Floats parses the named column as float64 values in record order.
func (d *Dataset) Floats(name string) ([]float64, error) {
	ix := d.columnIndex(name)
	if ix < 0 {
		return nil, fmt.Errorf("no column %q", name)
	}
	out := make([]float64, len(d.Records))
	for i, rec := range d.Records {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[ix]), 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", name, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// CategoryFor maps a quality-of-sleep score onto its 3-bin label:
// [0,3] Low, (3,6] Medium, (6,10] High.
func CategoryFor(score float64) string {
	switch {
	case score <= 3:
		return "Low"
	case score <= 6:
		return "Medium"
	default:
		return "High"
	}
}

// DeriveQualityCategories appends the derived category column, one label per
// record. No-op on an empty dataset. Calling it twice replaces the labels in
// place rather than appending a second column.
func (d *Dataset) DeriveQualityCategories() error {
	if d.Empty() {
		return nil
	}
	scores, err := d.Floats(QualityColumn)
	if err != nil {
		return fmt.Errorf("derive categories: %w", err)
	}
	ix := d.columnIndex(CategoryColumn)
	if ix < 0 {
		d.Columns = append(d.Columns, CategoryColumn)
		ix = len(d.Columns) - 1
		for i := range d.Records {
			d.Records[i] = append(d.Records[i], "")
		}
	}
	for i, s := range scores {
		d.Records[i][ix] = CategoryFor(s)
	}
	return nil
}
