// Package gcode turns a design's panels into a rectangular profile-cut
// toolpath for hobby CNC routers.
package gcode

import (
	"fmt"
	"math"
	"strings"

	"github.com/piwi3910/BoxCut/internal/model"
)

// Settings are the machining parameters for one job.
type Settings struct {
	Profile      string
	ToolDiameter float64
	FeedRate     float64 // mm/min
	PlungeRate   float64 // mm/min
	SpindleSpeed int     // RPM
	SafeZ        float64
	CutDepth     float64 // Full material thickness
	PassDepth    float64

	TabsPerSide int
	TabWidth    float64
	TabHeight   float64
}

// SettingsFromConfig builds job settings from the app config, cutting
// through the design's material thickness.
func SettingsFromConfig(cfg model.AppConfig, thickness float64) Settings {
	return Settings{
		Profile:      cfg.GCodeProfile,
		ToolDiameter: cfg.ToolDiameter,
		FeedRate:     cfg.FeedRate,
		PlungeRate:   cfg.PlungeRate,
		SpindleSpeed: cfg.SpindleSpeed,
		SafeZ:        cfg.SafeZ,
		CutDepth:     thickness,
		PassDepth:    cfg.PassDepth,
		TabsPerSide:  cfg.PartTabsPerSide,
		TabWidth:     cfg.PartTabWidth,
		TabHeight:    cfg.PartTabHeight,
	}
}

// Generator produces GCode for the preview row of a design.
type Generator struct {
	Settings Settings
	profile  Profile
}

func New(settings Settings) *Generator {
	return &Generator{
		Settings: settings,
		profile:  GetProfile(settings.Profile),
	}
}

// Generate returns the GCode program cutting every panel instance of the
// record at its preview position.
func (g *Generator) Generate(record model.DesignRecord) (string, error) {
	if len(record.Panels) == 0 {
		return "", fmt.Errorf("no panels to cut")
	}
	if g.Settings.CutDepth <= 0 || g.Settings.PassDepth <= 0 {
		return "", fmt.Errorf("cut depth %.2f and pass depth %.2f must be positive", g.Settings.CutDepth, g.Settings.PassDepth)
	}

	rects := model.PreviewLayout(record.Panels)

	var b strings.Builder
	g.writeHeader(&b, record, len(rects))
	for i, r := range rects {
		g.writePanel(&b, r, i+1)
	}
	g.writeFooter(&b)
	return b.String(), nil
}

// Passes returns the number of depth passes needed per panel.
func (g *Generator) Passes() int {
	return int(math.Ceil(g.Settings.CutDepth / g.Settings.PassDepth))
}

func (g *Generator) writeHeader(b *strings.Builder, record model.DesignRecord, pieces int) {
	p := g.profile
	params := record.Params

	b.WriteString(g.comment(fmt.Sprintf("BoxCut GCode - %.0f x %.0f x %.0f mm %s", params.Width, params.Depth, params.Height, params.Style)))
	b.WriteString(g.comment(fmt.Sprintf("Material: %s, %.1f mm", params.Material, params.Thickness)))
	b.WriteString(g.comment(fmt.Sprintf("Pieces: %d", pieces)))
	b.WriteString(g.comment(fmt.Sprintf("Tool: %.1fmm, Feed: %.0f mm/min, Plunge: %.0f mm/min",
		g.Settings.ToolDiameter, g.Settings.FeedRate, g.Settings.PlungeRate)))
	b.WriteString(g.comment(fmt.Sprintf("Depth: %.1fmm in %.1fmm passes", g.Settings.CutDepth, g.Settings.PassDepth)))
	b.WriteString(g.comment(fmt.Sprintf("Profile: %s", p.Name)))
	b.WriteString("\n")

	for _, code := range p.StartCode {
		b.WriteString(code + "\n")
	}
	if p.SpindleStart != "" {
		b.WriteString(fmt.Sprintf(p.SpindleStart+"\n", g.Settings.SpindleSpeed))
	}

	b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(0), g.format(0)))
	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	p := g.profile

	b.WriteString(g.comment("=== Job complete ==="))
	if p.SpindleStop != "" {
		b.WriteString(p.SpindleStop + "\n")
	}
	end := strings.NewReplacer(
		"[SafeZ]", g.format(g.Settings.SafeZ),
		"[Origin]", g.format(0),
	)
	for _, code := range p.EndCode {
		b.WriteString(end.Replace(code) + "\n")
	}
}

// writePanel cuts outside the panel perimeter, offset by the tool radius,
// stepping down one pass at a time. Tabs are left on the final pass.
func (g *Generator) writePanel(b *strings.Builder, r model.PreviewRect, num int) {
	toolR := g.Settings.ToolDiameter / 2.0

	x0 := r.X - toolR
	y0 := r.Y - toolR
	x1 := r.X + r.Width + toolR
	y1 := r.Y + r.Height + toolR

	b.WriteString(g.comment(fmt.Sprintf("--- Piece %d: %s #%d (%.1f x %.1f) ---", num, r.Panel, r.Instance, r.Width, r.Height)))

	passes := g.Passes()
	tabs := g.calculateTabs(x1-x0, y1-y0)

	for pass := 1; pass <= passes; pass++ {
		depth := math.Min(float64(pass)*g.Settings.PassDepth, g.Settings.CutDepth)

		b.WriteString(g.comment(fmt.Sprintf("Pass %d/%d, depth=%.2fmm", pass, passes, depth)))
		b.WriteString(fmt.Sprintf("%s X%s Y%s\n", g.profile.RapidMove, g.format(x0), g.format(y0)))
		b.WriteString(fmt.Sprintf("%s Z%s F%s\n", g.profile.FeedMove, g.format(-depth), g.format(g.Settings.PlungeRate)))

		if pass == passes && len(tabs) > 0 {
			g.writePerimeterWithTabs(b, x0, y0, x1, y1, depth, tabs)
		} else {
			g.writePerimeter(b, x0, y0, x1, y1)
		}

		b.WriteString(fmt.Sprintf("%s Z%s\n", g.profile.RapidMove, g.format(g.Settings.SafeZ)))
	}
	b.WriteString("\n")
}

func (g *Generator) writePerimeter(b *strings.Builder, x0, y0, x1, y1 float64) {
	p := g.profile
	b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", p.FeedMove, g.format(x1), g.format(y0), g.format(g.Settings.FeedRate)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.FeedMove, g.format(x1), g.format(y1)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.FeedMove, g.format(x0), g.format(y1)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.FeedMove, g.format(x0), g.format(y0)))
}

// tab is a holding tab centred at pos along one side.
type tab struct {
	side int // 0=bottom, 1=right, 2=top, 3=left
	pos  float64
}

func (g *Generator) calculateTabs(w, h float64) []tab {
	n := g.Settings.TabsPerSide
	if n <= 0 || g.Settings.TabHeight <= 0 {
		return nil
	}

	var tabs []tab
	for side := 0; side < 4; side++ {
		length := w
		if side%2 == 1 {
			length = h
		}
		spacing := length / float64(n+1)
		if spacing <= g.Settings.TabWidth {
			continue
		}
		for i := 1; i <= n; i++ {
			tabs = append(tabs, tab{side: side, pos: spacing * float64(i)})
		}
	}
	return tabs
}

func (g *Generator) writePerimeterWithTabs(b *strings.Builder, x0, y0, x1, y1, depth float64, tabs []tab) {
	tabDepth := math.Max(depth-g.Settings.TabHeight, 0)

	corners := [5][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
	for side := 0; side < 4; side++ {
		var sideTabs []tab
		for _, t := range tabs {
			if t.side == side {
				sideTabs = append(sideTabs, t)
			}
		}
		from, to := corners[side], corners[side+1]
		g.writeSideWithTabs(b, from[0], from[1], to[0], to[1], depth, tabDepth, sideTabs)
	}
}

func (g *Generator) writeSideWithTabs(b *strings.Builder, x0, y0, x1, y1, cutDepth, tabDepth float64, tabs []tab) {
	feed := g.profile.FeedMove
	if len(tabs) == 0 {
		b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", feed, g.format(x1), g.format(y1), g.format(g.Settings.FeedRate)))
		return
	}

	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length < 0.001 {
		return
	}
	nx := dx / length
	ny := dy / length

	half := g.Settings.TabWidth / 2
	for _, t := range tabs {
		start := t.pos - half
		end := t.pos + half

		b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", feed, g.format(x0+nx*start), g.format(y0+ny*start), g.format(g.Settings.FeedRate)))
		b.WriteString(fmt.Sprintf("%s Z%s\n", feed, g.format(-tabDepth)))
		b.WriteString(fmt.Sprintf("%s X%s Y%s\n", feed, g.format(x0+nx*end), g.format(y0+ny*end)))
		b.WriteString(fmt.Sprintf("%s Z%s\n", feed, g.format(-cutDepth)))
	}

	b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", feed, g.format(x1), g.format(y1), g.format(g.Settings.FeedRate)))
}

// comment wraps text in the profile's comment syntax.
func (g *Generator) comment(text string) string {
	return g.profile.CommentPrefix + " " + text + g.profile.CommentSuffix + "\n"
}

// format formats a coordinate according to the profile's decimal places.
func (g *Generator) format(v float64) string {
	return fmt.Sprintf("%.*f", g.profile.DecimalPlaces, v)
}
