package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/piwi3910/BoxCut/internal/export"
	"github.com/piwi3910/BoxCut/internal/gcode"
	"github.com/piwi3910/BoxCut/internal/importer"
	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/piwi3910/BoxCut/internal/project"
	"github.com/spf13/pflag"
)

// paramFlags are the box description flags shared by generate, compare
// and preset save.
type paramFlags struct {
	width, depth, height float64
	thickness, kerf      float64
	material, style      string
	prompt               string
	preset               string
}

func (f *paramFlags) register(fs *pflag.FlagSet, withPreset bool) {
	fs.Float64VarP(&f.width, "width", "W", 0, "outer width in mm")
	fs.Float64VarP(&f.depth, "depth", "D", 0, "outer depth in mm")
	fs.Float64VarP(&f.height, "height", "H", 0, "outer height in mm")
	fs.Float64VarP(&f.thickness, "thickness", "t", 0, "material thickness in mm")
	fs.Float64Var(&f.kerf, "kerf", 0, "tool kerf in mm")
	fs.StringVarP(&f.material, "material", "m", "", "material key from the catalog")
	fs.StringVar(&f.style, "style", "", "box style")
	fs.StringVarP(&f.prompt, "prompt", "p", "", `free-text description, e.g. "box 40x30x15 cm, birch plywood"`)
	if withPreset {
		fs.StringVar(&f.preset, "preset", "", "start from a saved preset")
	}
}

// explicit returns only the fields whose flags were given.
func (f *paramFlags) explicit(fs *pflag.FlagSet) model.RawParams {
	var raw model.RawParams
	floats := []struct {
		name string
		v    float64
		dst  **float64
	}{
		{"width", f.width, &raw.Width},
		{"depth", f.depth, &raw.Depth},
		{"height", f.height, &raw.Height},
		{"thickness", f.thickness, &raw.Thickness},
		{"kerf", f.kerf, &raw.Kerf},
	}
	for _, fl := range floats {
		if fs.Changed(fl.name) {
			*fl.dst = model.Float(fl.v)
		}
	}
	if fs.Changed("material") {
		raw.Material = f.material
	}
	if fs.Changed("style") {
		raw.Style = f.style
	}
	return raw
}

// resolve layers the sources of a box description. Explicit flags win over
// the prompt, which wins over the preset. Prompt materials are matched
// against catalog. The config defaults are applied later by the pipeline.
func (f *paramFlags) resolve(fs *pflag.FlagSet, presetPath string, catalog model.Catalog) (model.RawParams, error) {
	raw := f.explicit(fs)

	if f.prompt != "" {
		parsed, err := importer.ParsePrompt(f.prompt, catalog)
		if err != nil {
			return model.RawParams{}, fmt.Errorf("parsing prompt: %w", err)
		}
		raw = raw.Merge(parsed)
	}

	if f.preset != "" {
		presets, err := project.LoadPresets(presetPath)
		if err != nil {
			return model.RawParams{}, fmt.Errorf("loading presets: %w", err)
		}
		p := presets.Find(f.preset)
		if p == nil {
			return model.RawParams{}, fmt.Errorf("preset %q not found", f.preset)
		}
		raw = raw.Merge(p.Params)
	}

	return raw, nil
}

// exportFlags select the files written for a design.
type exportFlags struct {
	dxf, pdf, labels, xlsx, gcode string
	labelFingers                  bool
	gcodeProfile                  string
}

func (f *exportFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.dxf, "dxf", "", "write the preview layout as DXF")
	fs.StringVar(&f.pdf, "pdf", "", "write a PDF report")
	fs.StringVar(&f.labels, "labels", "", "write QR panel labels as PDF")
	fs.BoolVar(&f.labelFingers, "label-fingers", false, "include finger pieces in the labels")
	fs.StringVar(&f.xlsx, "xlsx", "", "write the cut list as XLSX")
	fs.StringVar(&f.gcode, "gcode", "", "write outside-contour G-code")
	fs.StringVar(&f.gcodeProfile, "gcode-profile", "", fmt.Sprintf("G-code dialect (%s)", strings.Join(gcode.ProfileNames(), ", ")))
}

// write runs every requested export and returns the paths written.
// Relative paths are placed under the configured output directory.
func (f *exportFlags) write(record model.DesignRecord, cfg model.AppConfig) ([]string, error) {
	var written []string
	out := func(path string, fn func(string) error) error {
		if path == "" {
			return nil
		}
		path = outputPath(cfg.OutputDir, path)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
		if err := fn(path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	steps := []struct {
		path string
		fn   func(string) error
	}{
		{f.dxf, func(p string) error { return export.ExportDXF(p, record.Panels) }},
		{f.pdf, func(p string) error { return export.ExportPDF(p, record) }},
		{f.labels, func(p string) error { return export.ExportLabels(p, record, f.labelFingers) }},
		{f.xlsx, func(p string) error { return export.ExportXLSX(p, record) }},
		{f.gcode, func(p string) error { return f.writeGCode(p, record, cfg) }},
	}
	for _, s := range steps {
		if err := out(s.path, s.fn); err != nil {
			return written, err
		}
	}
	return written, nil
}

func (f *exportFlags) writeGCode(path string, record model.DesignRecord, cfg model.AppConfig) error {
	if f.gcodeProfile != "" {
		cfg.GCodeProfile = f.gcodeProfile
	}
	code, err := gcode.New(gcode.SettingsFromConfig(cfg, record.Params.Thickness)).Generate(record)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(code), 0644)
}

func outputPath(dir, path string) string {
	if dir == "" || dir == "." || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// fileStem turns a design name into a safe file name stem.
func fileStem(name string) string {
	stem := strings.Trim(unsafeName.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if stem == "" {
		return "design"
	}
	return stem
}
