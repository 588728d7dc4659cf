package dataset

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FeatureStat holds the descriptive summary of one numeric column.
type FeatureStat struct {
	Name string
	Mean float64
	Min  float64
	Max  float64
}

// Normalized returns the column mean rescaled onto [0,100] within the
// observed [min,max] range. A constant column (max == min) normalizes to 0
// instead of dividing by zero.
func (s FeatureStat) Normalized() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Mean - s.Min) / (s.Max - s.Min) * 100
}

// Describe summarizes the named numeric column.
func (d *Dataset) Describe(name string) (FeatureStat, error) {
	if d.Empty() {
		return FeatureStat{}, ErrNoData
	}
	vals, err := d.Floats(name)
	if err != nil {
		return FeatureStat{}, err
	}
	return FeatureStat{
		Name: name,
		Mean: stat.Mean(vals, nil),
		Min:  floats.Min(vals),
		Max:  floats.Max(vals),
	}, nil
}

// DescribeAll summarizes each named column in order.
func (d *Dataset) DescribeAll(names []string) ([]FeatureStat, error) {
	out := make([]FeatureStat, 0, len(names))
	for _, n := range names {
		s, err := d.Describe(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// GroupMean is the mean of a value column within one key-column group.
type GroupMean struct {
	Key      string
	KeyValue float64
	Mean     float64
	Count    int
}

// GroupMeans averages valCol per distinct keyCol value. Groups are sorted by
// the numeric key value so chart bars come out in natural order.
func (d *Dataset) GroupMeans(keyCol, valCol string) ([]GroupMean, error) {
	if d.Empty() {
		return nil, ErrNoData
	}
	keys, err := d.Strings(keyCol)
	if err != nil {
		return nil, err
	}
	vals, err := d.Floats(valCol)
	if err != nil {
		return nil, err
	}
	sums := map[string]float64{}
	counts := map[string]int{}
	for i, k := range keys {
		sums[k] += vals[i]
		counts[k]++
	}
	out := make([]GroupMean, 0, len(sums))
	for k, sum := range sums {
		kv, err := strconv.ParseFloat(k, 64)
		if err != nil {
			return nil, fmt.Errorf("group key %q in %q is not numeric: %w", k, keyCol, err)
		}
		out = append(out, GroupMean{Key: k, KeyValue: kv, Mean: sum / float64(counts[k]), Count: counts[k]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].KeyValue < out[j].KeyValue })
	return out, nil
}

// Group collects all values of a column for one categorical key.
type Group struct {
	Key    string
	Values []float64
}

// GroupValues splits valCol by the categorical keyCol, groups sorted by key
// name for a stable display order.
func (d *Dataset) GroupValues(keyCol, valCol string) ([]Group, error) {
	if d.Empty() {
		return nil, ErrNoData
	}
	keys, err := d.Strings(keyCol)
	if err != nil {
		return nil, err
	}
	vals, err := d.Floats(valCol)
	if err != nil {
		return nil, err
	}
	byKey := map[string][]float64{}
	for i, k := range keys {
		byKey[k] = append(byKey[k], vals[i])
	}
	names := make([]string, 0, len(byKey))
	for k := range byKey {
		names = append(names, k)
	}
	sort.Strings(names)
	out := make([]Group, 0, len(names))
	for _, k := range names {
		out = append(out, Group{Key: k, Values: byKey[k]})
	}
	return out, nil
}
