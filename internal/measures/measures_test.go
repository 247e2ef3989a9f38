package measures

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/daepyo/internal/lesson"
)

func TestCompute_LessonScenarios(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		want Summary
	}{
		{
			// 64 / 8 = 8.0; even length exercises the two-middle median.
			name: "jegichagi counts",
			data: []float64{4, 5, 6, 6, 6, 7, 7, 23},
			want: Summary{Mean: 8.0, Median: 6.0, Mode: 6},
		},
		{
			// 1820 / 7 = 260.0; odd length exercises the single-middle median.
			name: "shoe sizes",
			data: []float64{250, 250, 250, 260, 260, 270, 280},
			want: Summary{Mean: 260.0, Median: 260.0, Mode: 250},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.data)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Mean, got.Mean, 1e-9)
			assert.InDelta(t, tt.want.Median, got.Median, 1e-9)
			assert.Equal(t, tt.want.Mode, got.Mode)
		})
	}
}

func TestCompute_MatchesLessonTable(t *testing.T) {
	for _, sc := range lesson.Scenarios() {
		_, err := Compute(sc.Data)
		require.NoError(t, err, "scenario %d", sc.ID)
	}
}

func TestCompute_RoundsMeanToOneDecimal(t *testing.T) {
	got, err := Compute([]float64{1, 2, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.7, got.Mean, 1e-9)
}

func TestCompute_DoesNotReorderInput(t *testing.T) {
	data := []float64{9, 1, 5}
	orig := slices.Clone(data)
	_, err := Compute(data)
	require.NoError(t, err)
	assert.Equal(t, orig, data)
}

func TestCompute_Empty(t *testing.T) {
	_, err := Compute(nil)
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestMode_TieBreaksOnFirstAppearance(t *testing.T) {
	assert.Equal(t, 3.0, Mode([]float64{3, 1, 1, 3}))
	assert.Equal(t, 1.0, Mode([]float64{1, 3, 3, 1}))
	assert.Equal(t, 7.0, Mode([]float64{7}))
}

func TestSummary_Value(t *testing.T) {
	s := Summary{Mean: 1, Median: 2, Mode: 3}
	assert.Equal(t, 1.0, s.Value(lesson.StatMean))
	assert.Equal(t, 2.0, s.Value(lesson.StatMedian))
	assert.Equal(t, 3.0, s.Value(lesson.StatMode))
}
