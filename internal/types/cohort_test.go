package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cohortFixture() *CohortStats {
	return &CohortStats{
		Buckets: []CohortBucket{
			{Category: "IT", MinYears: 0, MaxYears: 3, SampleSize: 100},
			{Category: "IT", MinYears: 4, MaxYears: 10, SampleSize: 50},
			{Category: "Design", MinYears: 0, MaxYears: 5, SampleSize: 30},
		},
	}
}

func TestLookup_ExactBand(t *testing.T) {
	stats := cohortFixture()

	bucket := stats.Lookup("IT", 2)
	require.NotNil(t, bucket)
	assert.Equal(t, 0, bucket.MinYears)

	bucket = stats.Lookup("IT", 7)
	require.NotNil(t, bucket)
	assert.Equal(t, 4, bucket.MinYears)
}

func TestLookup_NearestBandWhenUncovered(t *testing.T) {
	stats := cohortFixture()

	// 20 years is past every IT band; the closest is 4-10
	bucket := stats.Lookup("IT", 20)
	require.NotNil(t, bucket)
	assert.Equal(t, 4, bucket.MinYears)
}

func TestLookup_UnknownCategory(t *testing.T) {
	assert.Nil(t, cohortFixture().Lookup("Finance", 3))
}

func TestLookup_NilStats(t *testing.T) {
	var stats *CohortStats
	assert.Nil(t, stats.Lookup("IT", 3))
}

func TestLookup_NearestTieResolvesToLowerBand(t *testing.T) {
	stats := &CohortStats{
		Buckets: []CohortBucket{
			{Category: "IT", MinYears: 6, MaxYears: 8},
			{Category: "IT", MinYears: 0, MaxYears: 2},
		},
	}

	// 4 years is distance 2 from both bands
	bucket := stats.Lookup("IT", 4)
	require.NotNil(t, bucket)
	assert.Equal(t, 0, bucket.MinYears)
}

func TestContains_Bounds(t *testing.T) {
	b := &CohortBucket{MinYears: 2, MaxYears: 5}

	assert.True(t, b.Contains(2))
	assert.True(t, b.Contains(5))
	assert.False(t, b.Contains(1))
	assert.False(t, b.Contains(6))
}
