package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsFixture() *Dataset {
	return &Dataset{
		Columns: []string{"Gender", "Quality of Sleep", "Stress Level"},
		Records: []Record{
			{"Male", "2", "3"},
			{"Female", "4", "3"},
			{"Male", "6", "7"},
			{"Female", "8", "7"},
		},
	}
}

func TestDescribe(t *testing.T) {
	s, err := statsFixture().Describe(QualityColumn)
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.Mean)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 8.0, s.Max)
}

func TestNormalizedExact(t *testing.T) {
	// ((5-2)/(8-2))*100 must be exactly 50
	s := FeatureStat{Mean: 5, Min: 2, Max: 8}
	assert.Equal(t, 50.0, s.Normalized())
}

func TestNormalizedConstantFeature(t *testing.T) {
	s := FeatureStat{Mean: 7, Min: 7, Max: 7}
	assert.Equal(t, 0.0, s.Normalized(), "constant feature normalizes to 0, not NaN")
}

func TestDescribeEmpty(t *testing.T) {
	ds := &Dataset{Columns: []string{"Quality of Sleep"}}
	_, err := ds.Describe(QualityColumn)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestGroupMeansSortedByKeyValue(t *testing.T) {
	groups, err := statsFixture().GroupMeans("Stress Level", QualityColumn)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "3", groups[0].Key)
	assert.Equal(t, 3.0, groups[0].Mean) // (2+4)/2
	assert.Equal(t, 2, groups[0].Count)

	assert.Equal(t, "7", groups[1].Key)
	assert.Equal(t, 7.0, groups[1].Mean) // (6+8)/2
}

func TestGroupValuesSortedByKey(t *testing.T) {
	groups, err := statsFixture().GroupValues("Gender", QualityColumn)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Female", groups[0].Key)
	assert.Equal(t, []float64{4, 8}, groups[0].Values)
	assert.Equal(t, "Male", groups[1].Key)
	assert.Equal(t, []float64{2, 6}, groups[1].Values)
}

func TestGroupMeansNonNumericKey(t *testing.T) {
	_, err := statsFixture().GroupMeans("Gender", QualityColumn)
	assert.Error(t, err)
}
