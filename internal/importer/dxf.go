package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// Shape is one closed outline read from a DXF file.
type Shape struct {
	Points []model.Point2D
}

// Bounds returns the minimum and maximum corners of the shape.
func (s Shape) Bounds() (min, max model.Point2D) {
	if len(s.Points) == 0 {
		return
	}
	min, max = s.Points[0], s.Points[0]
	for _, p := range s.Points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Size returns the bounding-box width and height.
func (s Shape) Size() (w, h float64) {
	min, max := s.Bounds()
	return max.X - min.X, max.Y - min.Y
}

// DXFResult holds the shapes read from a drawing.
type DXFResult struct {
	Shapes   []Shape
	Errors   []string
	Warnings []string
}

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	start model.Point2D
	end   model.Point2D
}

// ReadDXF reads closed outlines from a DXF file. Each LWPOLYLINE becomes a
// shape, and loose LINE entities are chained into closed outlines. Shapes
// keep drawing order; chained outlines follow, largest first.
func ReadDXF(path string) DXFResult {
	result := DXFResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var segments []segment
	skipped := 0
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if len(e.Vertices) < 3 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
				continue
			}
			shape := Shape{Points: make([]model.Point2D, len(e.Vertices))}
			for i, v := range e.Vertices {
				shape.Points[i] = model.Point2D{X: v[0], Y: v[1]}
			}
			result.Shapes = append(result.Shapes, shape)

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point2D{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point2D{X: e.End[0], Y: e.End[1]},
			})

		default:
			skipped++
		}
	}
	if skipped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d unsupported entities", skipped))
	}

	for _, chained := range chainSegments(segments, 0.01) {
		result.Shapes = append(result.Shapes, Shape{Points: chained})
	}

	if len(result.Shapes) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
	}
	return result
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) [][]model.Point2D {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]model.Point2D

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []model.Point2D{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Only closed chains describe a cut piece
		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			outlines = append(outlines, chain[:len(chain)-1])
		}
	}

	sort.SliceStable(outlines, func(i, j int) bool {
		return polygonArea(outlines[i]) > polygonArea(outlines[j])
	})

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b model.Point2D, tolerance float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= tolerance
}

// polygonArea computes the absolute area of a polygon using the shoelace formula.
func polygonArea(pts []model.Point2D) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return math.Abs(area) / 2
}
