package importer

import (
	"testing"

	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrompt(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.RawParams
	}{
		{
			name: "centimetres with material and thickness",
			text: "box 40x30x15 cm, birch plywood, 12mm",
			want: model.RawParams{
				Width: model.Float(400), Depth: model.Float(300), Height: model.Float(150),
				Thickness: model.Float(12), Material: "birch_plywood_12mm",
			},
		},
		{
			name: "millimetres by default",
			text: "400 x 300 x 150 MDF",
			want: model.RawParams{
				Width: model.Float(400), Depth: model.Float(300), Height: model.Float(150),
				Material: "mdf_18mm",
			},
		},
		{
			name: "metres and kerf",
			text: "a chest 1.2 by 0.5 by 0.6 m, oak, kerf 3mm",
			want: model.RawParams{
				Width: model.Float(1200), Depth: model.Float(500), Height: model.Float(600),
				Kerf: model.Float(3), Material: "oak_veneer_18mm",
			},
		},
		{
			name: "mixed units per dimension",
			text: "50cm × 300mm × 20cm hinged lid",
			want: model.RawParams{
				Width: model.Float(500), Depth: model.Float(300), Height: model.Float(200),
				Style: "hinged_lid",
			},
		},
		{
			name: "material only",
			text: "something in perspex",
			want: model.RawParams{Material: "acrylic_3mm"},
		},
		{
			name: "unsupported style passes through",
			text: "200x200x100 sliding-lid",
			want: model.RawParams{
				Width: model.Float(200), Depth: model.Float(200), Height: model.Float(100),
				Style: "sliding_lid",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrompt(tt.text, model.DefaultCatalog())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePrompt_NothingRecognised(t *testing.T) {
	_, err := ParsePrompt("make me something nice", model.DefaultCatalog())
	assert.Error(t, err)
}

func TestMaterialKey(t *testing.T) {
	catalog := model.DefaultCatalog()

	key, ok := MaterialKey("MDF 18mm", catalog)
	assert.True(t, ok)
	assert.Equal(t, "mdf_18mm", key)

	key, ok = MaterialKey("birch-plywood-12mm", catalog)
	assert.True(t, ok)
	assert.Equal(t, "birch_plywood_12mm", key)

	key, ok = MaterialKey("Cherry", catalog)
	assert.False(t, ok)
	assert.Equal(t, "cherry", key)
}

// walnutCatalog stocks a material the built-in catalog does not know.
func walnutCatalog() model.Catalog {
	catalog := model.DefaultCatalog()
	catalog.Materials = append(catalog.Materials,
		model.Material{Key: "walnut_18mm", Name: "Walnut 18mm", PricePerM2: 60},
		model.Material{Key: "walnut_12mm", Name: "Walnut 12mm", PricePerM2: 48},
	)
	return catalog
}

func TestMaterialKey_CustomCatalog(t *testing.T) {
	catalog := walnutCatalog()

	key, ok := MaterialKey("Walnut 12mm", catalog)
	assert.True(t, ok)
	assert.Equal(t, "walnut_12mm", key)

	key, ok = MaterialKey("walnut", catalog)
	assert.True(t, ok)
	assert.Equal(t, "walnut_18mm", key)

	key, ok = MaterialKey("walnut", model.DefaultCatalog())
	assert.False(t, ok)
	assert.Equal(t, "walnut", key)
}

func TestParsePrompt_CustomCatalog(t *testing.T) {
	got, err := ParsePrompt("box 40x30x15 cm in walnut, 12mm", walnutCatalog())
	require.NoError(t, err)
	assert.Equal(t, "walnut_12mm", got.Material)
	assert.Equal(t, 12.0, *got.Thickness)

	got, err = ParsePrompt("walnut box 400x300x150", walnutCatalog())
	require.NoError(t, err)
	assert.Equal(t, "walnut_18mm", got.Material)

	_, err = ParsePrompt("walnut", model.DefaultCatalog())
	assert.Error(t, err)
}
