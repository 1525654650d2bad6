package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/windowgram/pkg/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Type
	}{
		{"single pane", "1", TypeSplit},
		{"two rows", "11\n22", TypeSplit},
		{"quad", "12\n34", TypeSplit},
		{"editor and shells", "1112\n1113\n4444", TypeSplit},
		{"diagonal", "12\n21", TypeLayered},
		{"enclosed", "111\n121\n111", TypeLayered},
		{"pinwheel", "112\n452\n433", TypeTiled},
		{"parse error", "12\n3", TypeError},
		{"empty", "", TypeError},
		{"invalid character", "1-2", TypeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}

func TestAnalyze_Layered(t *testing.T) {
	a := Analyze("12\n21", nil)

	require.Equal(t, TypeLayered, a.Type)
	require.Len(t, a.Overlap, 2)
	assert.Equal(t, byte('1'), a.Overlap[0].ID)
	assert.Equal(t, byte('2'), a.Overlap[1].ID)
	assert.True(t, errors.Is(a.Err, errors.ErrCodeOverlap))
	assert.Nil(t, a.Plan)
}

func TestAnalyze_Tiled(t *testing.T) {
	a := Analyze("112\n452\n433", nil)

	require.Equal(t, TypeTiled, a.Type)
	require.NotNil(t, a.Plan)
	assert.NotEmpty(t, a.Plan.Unsupported)
	assert.True(t, errors.Is(a.Err, errors.ErrCodeUnsupportedLayout))
}

func TestAnalyze_Split(t *testing.T) {
	a := Analyze("11\n22", nil)

	require.Equal(t, TypeSplit, a.Type)
	require.NotNil(t, a.Plan)
	assert.Len(t, a.Plan.Splits, 1)
	assert.NoError(t, a.Err)
}

func TestAnalyze_Error(t *testing.T) {
	a := Analyze("12\n345", nil)

	assert.Equal(t, TypeError, a.Type)
	assert.True(t, errors.IsStructural(a.Err))
	assert.Equal(t, 2, errors.GetLine(a.Err))
}
