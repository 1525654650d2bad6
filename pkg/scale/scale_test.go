package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

func TestEdge(t *testing.T) {
	tests := []struct {
		c    int
		m    float64
		want int
	}{
		{1, 3, 1},
		{2, 3, 4},
		{2, 1.25, 2},
		{2, 1.5, 3},
		{3, 0.5, 2},
		{5, 1, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Edge(tt.c, tt.m), "Edge(%d, %v)", tt.c, tt.m)
	}
}

func TestCorner_SinglePaneGrows(t *testing.T) {
	res, err := Corner{}.Scale(windowgram.MustParse("1"), 3, 3)
	require.NoError(t, err)

	require.Len(t, res.Panes, 1)
	assert.Equal(t, windowgram.Rect{X: 1, Y: 1, W: 3, H: 3}, res.Panes[0].Rect)
	assert.Equal(t, "111\n111\n111\n", res.Windowgram.String())
	assert.Empty(t, res.Lost)
}

func TestCorner_Double(t *testing.T) {
	res, err := Corner{}.Scale(windowgram.MustParse("12\n34"), 4, 4)
	require.NoError(t, err)
	assert.Equal(t, "1122\n1122\n3344\n3344\n", res.Windowgram.String())
}

func TestCorner_Identity(t *testing.T) {
	inputs := []string{"1", "12\n34", "112\n452\n433", "aab\ncdb\ncee", "1112\n3332\n4444"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			w := windowgram.MustParse(input)
			res, err := Corner{}.Scale(w, w.Width(), w.Height())
			require.NoError(t, err)
			assert.Equal(t, w.SortedPanes(), res.Panes)
			assert.True(t, res.Windowgram.Equal(w))
		})
	}
}

func TestCorner_PreservesNonOverlap(t *testing.T) {
	inputs := []string{"12\n34", "112\n452\n433", "aab\ncdb\ncee", "1223\n1443\n5553"}
	sizes := [][2]int{{1, 1}, {2, 5}, {7, 3}, {10, 10}, {17, 9}, {64, 36}}

	for _, input := range inputs {
		w := windowgram.MustParse(input)
		for _, size := range sizes {
			res, err := Corner{}.Scale(w, size[0], size[1])
			require.NoError(t, err, "%q to %v", input, size)

			var kept []windowgram.Pane
			for _, p := range res.Panes {
				if !p.Empty() {
					kept = append(kept, p)
				}
			}
			_, _, overlap := windowgram.FindOverlap(kept)
			assert.False(t, overlap, "%q scaled to %v overlaps", input, size)
			assert.Equal(t, size[0], res.Windowgram.Width())
			assert.Equal(t, size[1], res.Windowgram.Height())
		}
	}
}

func TestCorner_LosesPanes(t *testing.T) {
	res, err := Corner{}.Scale(windowgram.MustParse("123"), 2, 1)
	require.NoError(t, err)

	assert.Equal(t, "13\n", res.Windowgram.String())
	assert.Equal(t, "2", res.Lost)
	require.Len(t, res.Panes, 3)
	assert.Equal(t, 0, res.Panes[1].W)
}

func TestResample(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		w, h   int
		want   string
		lost   string
	}{
		{"grow", "1", 3, 3, "111\n111\n111\n", ""},
		{"double", "12\n34", 4, 2, "1122\n3344\n", ""},
		{"identity", "112\n452\n433", 3, 3, "112\n452\n433\n", ""},
		{"fractional shrink", "123", 2, 1, "12\n", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resample{}.Scale(windowgram.MustParse(tt.input), tt.w, tt.h)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Windowgram.String())
			assert.Equal(t, tt.lost, res.Lost)
		})
	}
}

func TestStrategiesDiverge(t *testing.T) {
	w := windowgram.MustParse("123")
	corner, err := Corner{}.Scale(w, 2, 1)
	require.NoError(t, err)
	resample, err := Resample{}.Scale(w, 2, 1)
	require.NoError(t, err)

	assert.NotEqual(t, corner.Windowgram.String(), resample.Windowgram.String())
}

func TestScale_InvalidSize(t *testing.T) {
	w := windowgram.MustParse("1")
	for _, s := range []Strategy{Corner{}, Resample{}} {
		_, err := s.Scale(w, 0, 3)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), s.Name())

		_, err = s.Scale(w, 3, errors.MaxDimension+1)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), s.Name())
	}
}

func TestStrategyByName(t *testing.T) {
	s, err := StrategyByName("corner")
	require.NoError(t, err)
	assert.Equal(t, NameCorner, s.Name())

	s, err = StrategyByName("RESAMPLE")
	require.NoError(t, err)
	assert.Equal(t, NameResample, s.Name())

	_, err = StrategyByName("bilinear")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestExact(t *testing.T) {
	t.Run("matches after retry", func(t *testing.T) {
		res, err := Exact(windowgram.MustParse("1222"), 5, 1, Target{ID: '1', W: 2, H: 1})
		require.NoError(t, err)

		assert.True(t, res.Matched)
		assert.Equal(t, 2, res.Attempts)
		assert.Equal(t, 6, res.Width)
		p, ok := res.Windowgram.Pane('1')
		require.True(t, ok)
		assert.Equal(t, 2, p.W)
	})

	t.Run("matches first try", func(t *testing.T) {
		res, err := Exact(windowgram.MustParse("12"), 6, 2, Target{ID: '1', W: 3, H: 2})
		require.NoError(t, err)
		assert.True(t, res.Matched)
		assert.Equal(t, 1, res.Attempts)
	})

	t.Run("missing pane scales once", func(t *testing.T) {
		res, err := Exact(windowgram.MustParse("12"), 4, 2, Target{ID: 'z', W: 1, H: 1})
		require.NoError(t, err)
		assert.False(t, res.Matched)
		assert.Equal(t, 1, res.Attempts)
		assert.Equal(t, "1122\n1122\n", res.Windowgram.String())
	})

	t.Run("unreachable returns last result", func(t *testing.T) {
		res, err := Exact(windowgram.MustParse("12"), 2, 1, Target{ID: '1', W: 0, H: 1})
		require.NoError(t, err)
		assert.False(t, res.Matched)
		assert.Equal(t, 2, res.Attempts)
		assert.Equal(t, 1, res.Width)
		assert.NotNil(t, res.Windowgram)
	})

	t.Run("bounded attempts", func(t *testing.T) {
		res, err := Exact(windowgram.MustParse("1"), 1, 1, Target{ID: '1', W: 100, H: 1})
		require.NoError(t, err)
		assert.False(t, res.Matched)
		assert.Equal(t, MaxAttempts, res.Attempts)
		assert.Equal(t, MaxAttempts, res.Width)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := Exact(windowgram.MustParse("1"), 0, 1, Target{ID: '1', W: 1, H: 1})
		assert.Error(t, err)
	})
}
