package gcode

import (
	"strconv"
	"strings"
	"testing"

	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSettings returns settings with predictable output.
func newTestSettings() Settings {
	return Settings{
		Profile:      "Generic",
		ToolDiameter: 6.0,
		FeedRate:     1000.0,
		PlungeRate:   300.0,
		SpindleSpeed: 12000,
		SafeZ:        5.0,
		CutDepth:     18.0,
		PassDepth:    6.0,
	}
}

func newTestRecord() model.DesignRecord {
	return model.DesignRecord{
		Params: model.NormalizedParams{Width: 400, Depth: 300, Height: 150, Thickness: 18, Kerf: 2, Material: "mdf_18mm", Style: model.StyleHingedLid},
		Panels: []model.PanelSpec{
			{Name: "bottom", Width: 100, Height: 50, Quantity: 1, Kind: model.KindPanel},
			{Name: "hinge_finger", Width: 20, Height: 40, Quantity: 2, Kind: model.KindFinger},
		},
	}
}

// ─── Program Structure Tests ───

func TestGenerate_HeaderAndFooter(t *testing.T) {
	code, err := New(newTestSettings()).Generate(newTestRecord())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "; BoxCut GCode - 400 x 300 x 150 mm hinged_lid\n"))
	assert.Contains(t, code, "; Pieces: 3\n")
	assert.Contains(t, code, "G90\nG21\nM3 S12000\n")
	assert.True(t, strings.HasSuffix(code, "M5\nG0 Z5.000\nG0 X0.000 Y0.000\nM2\n"))
}

func TestGenerate_OneBlockPerInstance(t *testing.T) {
	code, err := New(newTestSettings()).Generate(newTestRecord())
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(code, "--- Piece "))
	assert.Contains(t, code, "--- Piece 1: bottom #1 (100.0 x 50.0) ---")
	assert.Contains(t, code, "--- Piece 3: hinge_finger #2 (20.0 x 40.0) ---")
}

func TestGenerate_PerimeterOffsetByToolRadius(t *testing.T) {
	code, err := New(newTestSettings()).Generate(newTestRecord())
	require.NoError(t, err)

	// bottom at slot 0: 100x50 grown by 3mm on each side
	assert.Contains(t, code, "G0 X-3.000 Y-3.000\n")
	assert.Contains(t, code, "G1 X103.000 Y-3.000 F1000.000\n")
	assert.Contains(t, code, "G1 X103.000 Y53.000\n")

	// second piece starts one preview pitch to the right
	assert.Contains(t, code, "G0 X497.000 Y-3.000\n")
}

func TestGenerate_MultiplePasses(t *testing.T) {
	gen := New(newTestSettings())
	assert.Equal(t, 3, gen.Passes())

	code, err := gen.Generate(newTestRecord())
	require.NoError(t, err)
	assert.Contains(t, code, "Pass 1/3, depth=6.00mm")
	assert.Contains(t, code, "Pass 3/3, depth=18.00mm")
	assert.Contains(t, code, "G1 Z-18.000 F300.000\n")
}

func TestGenerate_PartialFinalPass(t *testing.T) {
	s := newTestSettings()
	s.CutDepth = 15
	code, err := New(s).Generate(newTestRecord())
	require.NoError(t, err)
	assert.Contains(t, code, "Pass 3/3, depth=15.00mm")
	assert.NotContains(t, code, "Z-18.000")
}

func TestGenerate_Errors(t *testing.T) {
	_, err := New(newTestSettings()).Generate(model.DesignRecord{})
	assert.Error(t, err)

	s := newTestSettings()
	s.PassDepth = 0
	_, err = New(s).Generate(newTestRecord())
	assert.Error(t, err)
}

// ─── Tab Tests ───

func TestGenerate_TabsOnFinalPassOnly(t *testing.T) {
	s := newTestSettings()
	s.TabsPerSide = 1
	s.TabWidth = 8
	s.TabHeight = 2

	code, err := New(s).Generate(newTestRecord())
	require.NoError(t, err)

	// Raised to 18-2 on the final pass only
	assert.Contains(t, code, "G1 Z-16.000\n")
	assert.NotContains(t, code, "G1 Z-4.000\n")
}

func TestCalculateTabs_SkipsShortSides(t *testing.T) {
	s := newTestSettings()
	s.TabsPerSide = 2
	s.TabWidth = 10
	s.TabHeight = 2
	gen := New(s)

	tabs := gen.calculateTabs(100, 20)
	// Short sides are 20 long, spacing 6.7 < tab width
	require.Len(t, tabs, 4)
	for _, tb := range tabs {
		assert.Equal(t, 0, tb.side%2)
	}
}

// ─── Profile Tests ───

func TestGetProfile_FallsBackToGeneric(t *testing.T) {
	assert.Equal(t, "Generic", GetProfile("nope").Name)
	assert.Equal(t, "Grbl", GetProfile("Grbl").Name)
	assert.Equal(t, []string{"Grbl", "Mach3", "LinuxCNC", "Generic"}, ProfileNames())
}

func TestGenerate_Mach3Comments(t *testing.T) {
	s := newTestSettings()
	s.Profile = "Mach3"
	code, err := New(s).Generate(newTestRecord())
	require.NoError(t, err)
	assert.Contains(t, code, "( Profile: Mach3)\n")
	assert.Contains(t, code, "G0 X-3.0000 Y-3.0000\n")
	assert.True(t, strings.HasSuffix(code, "M30\n"))
}

func TestGenerate_FooterMatchesHeaderFormat(t *testing.T) {
	for _, name := range ProfileNames() {
		t.Run(name, func(t *testing.T) {
			s := newTestSettings()
			s.Profile = name
			code, err := New(s).Generate(newTestRecord())
			require.NoError(t, err)

			p := GetProfile(name)
			zero := strconv.FormatFloat(0, 'f', p.DecimalPlaces, 64)
			safeZ := strconv.FormatFloat(s.SafeZ, 'f', p.DecimalPlaces, 64)

			assert.Contains(t, code, "G0 X"+zero+" Y"+zero+"\n", "header origin move")
			assert.Contains(t, code, "X"+zero+" Y"+zero+"\n"+p.EndCode[len(p.EndCode)-1]+"\n", "footer origin move")
			assert.Contains(t, code, "G0 Z"+safeZ+"\n")
			assert.NotContains(t, code, "[")
			assert.NotContains(t, code, "X0 Y0")
		})
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.GCodeProfile = "Grbl"
	cfg.PartTabsPerSide = 2

	s := SettingsFromConfig(cfg, 12)
	assert.Equal(t, "Grbl", s.Profile)
	assert.Equal(t, 12.0, s.CutDepth)
	assert.Equal(t, cfg.PassDepth, s.PassDepth)
	assert.Equal(t, 2, s.TabsPerSide)
	assert.Equal(t, cfg.PartTabWidth, s.TabWidth)
}
