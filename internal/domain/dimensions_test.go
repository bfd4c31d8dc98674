package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingDimensionsValidate(t *testing.T) {
	t.Parallel()

	valid := BuildingDimensions{
		FoundationLength: 10, FoundationWidth: 8, FoundationDepth: 0.5,
		ColumnCount: 6, ColumnLength: 0.3, ColumnWidth: 0.3, ColumnHeight: 3,
		BeamCount: 8, BeamLength: 4, BeamWidth: 0.25, BeamDepth: 0.4,
		WallLength: 24, WallHeight: 3, WallThickness: 0.23,
		SlabLength: 10, SlabWidth: 8, SlabThickness: 150,
	}
	require.NoError(t, valid.Validate())
	require.NoError(t, BuildingDimensions{}.Validate(), "all-zero dimensions are valid")

	cases := []struct {
		name   string
		mutate func(d *BuildingDimensions)
		field  string
		want   error
	}{
		{"negative foundation length", func(d *BuildingDimensions) { d.FoundationLength = -1 }, "foundation_length", ErrInvalidDimension},
		{"nan wall height", func(d *BuildingDimensions) { d.WallHeight = math.NaN() }, "wall_height", ErrInvalidDimension},
		{"infinite slab thickness", func(d *BuildingDimensions) { d.SlabThickness = math.Inf(1) }, "slab_thickness", ErrInvalidDimension},
		{"negative column count", func(d *BuildingDimensions) { d.ColumnCount = -2 }, "column_count", ErrInvalidCount},
		{"negative beam count", func(d *BuildingDimensions) { d.BeamCount = -1 }, "beam_count", ErrInvalidCount},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := valid
			tc.mutate(&d)

			err := d.Validate()
			require.ErrorIs(t, err, tc.want)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestElementMaterialsScale(t *testing.T) {
	t.Parallel()

	unit := ElementMaterials{Concrete: 0.27, Cement: 86, Sand: 191, Aggregate: 345, Steel: 33}

	got := unit.Scale(6)
	assert.Equal(t, 516.0, got.Cement)
	assert.Equal(t, 1146.0, got.Sand)
	assert.Equal(t, 2070.0, got.Aggregate)
	assert.Equal(t, 198.0, got.Steel)
	assert.InDelta(t, 1.62, got.Concrete, 1e-9)

	assert.Equal(t, ElementMaterials{}, unit.Scale(0))
}

func TestUploadedFileExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ext       string
		supported bool
	}{
		{"House.SKP", "skp", true},
		{"plan.dwg", "dwg", true},
		{"plan.dxf", "dxf", true},
		{"tower.rvt", "rvt", true},
		{"model.ifc", "ifc", true},
		{"scene.3ds", "3ds", true},
		{"archive.tar.gz", "gz", false},
		{"a.skp.txt", "txt", false},
		{"noext", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		f := UploadedFile{Name: tc.name}
		assert.Equal(t, tc.ext, f.Extension(), tc.name)
		assert.Equal(t, tc.supported, f.IsSupportedModel(), tc.name)
	}
}
