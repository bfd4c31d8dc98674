package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMixRatio(t *testing.T) {
	t.Parallel()

	r, err := ParseMixRatio("1:2:4")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, r.Parts)
	assert.Equal(t, 7, r.Total())
	assert.Equal(t, "1:2:4", r.String())

	r, err = ParseMixRatio(" 1 : 6 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6}, r.Parts)

	r, err = ParseMixRatio("1000:1000:1000")
	require.NoError(t, err)
	assert.Equal(t, 3000, r.Total())
}

func TestParseMixRatio_Rejects(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "4", "1:x:4", "1:0:4", "1:-2:4", "1::4", "1.5:2:4",
		"9223372036854775807:1:1", "4611686018427387904:4611686018427387904:1", "1001:1:1"} {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			_, err := ParseMixRatio(in)
			require.ErrorIs(t, err, ErrInvalidRatio)
		})
	}
}

func TestMixRatioValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MixRatio{Parts: []int{1, 2, 4}}.Validate())
	assert.ErrorIs(t, MixRatio{Parts: []int{1}}.Validate(), ErrInvalidRatio)
	assert.ErrorIs(t, MixRatio{Parts: []int{math.MaxInt, 1, 1}}.Validate(), ErrInvalidRatio)
	assert.ErrorIs(t, MixRatio{Parts: []int{1, 0, 4}}.Validate(), ErrInvalidRatio)
}

func TestMustParseMixRatio_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParseMixRatio("bad") })
	assert.NotPanics(t, func() { MustParseMixRatio(FoundationConcreteRatio) })
}
