// pkg/render/marker_renderer.go
package render

import (
	"image/color"
	"line-defense/internal/component"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultMarkerDuration = 0.25

// activeMarker — маркер с твинами прозрачности и масштаба.
type activeMarker struct {
	m     component.Marker
	alpha *gween.Tween
	scale *gween.Tween
	a, s  float32
}

// MarkerRenderer принимает одноразовые примитивы от систем и гасит их твинами.
// Время идёт только через Update, поэтому на паузе маркеры замирают.
type MarkerRenderer struct {
	markers []*activeMarker
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewMarkerRenderer() *MarkerRenderer {
	return &MarkerRenderer{}
}

// Spawn implements interfaces.Renderer.
func (r *MarkerRenderer) Spawn(m component.Marker) {
	d := float32(m.Duration)
	if d <= 0 {
		d = defaultMarkerDuration
	}
	am := &activeMarker{
		m:     m,
		alpha: gween.New(1, 0, d, ease.OutQuad),
		scale: gween.New(1, 1, d, ease.Linear),
		a:     1,
		s:     1,
	}
	// Кольца разлетаются от 60% радиуса.
	if m.Shape == component.MarkerRing {
		am.scale = gween.New(0.6, 1, d, ease.OutCubic)
		am.s = 0.6
	}
	r.markers = append(r.markers, am)
}

// Update advances every tween and drops finished markers.
func (r *MarkerRenderer) Update(dt float64) {
	live := r.markers[:0]
	for _, am := range r.markers {
		var done bool
		am.a, done = am.alpha.Update(float32(dt))
		am.s, _ = am.scale.Update(float32(dt))
		if !done {
			live = append(live, am)
		}
	}
	clear(r.markers[len(live):])
	r.markers = live
}

func (r *MarkerRenderer) Len() int { return len(r.markers) }

// Clear drops every marker, e.g. when a new run starts.
func (r *MarkerRenderer) Clear() { r.markers = r.markers[:0] }

func (r *MarkerRenderer) Draw(screen *ebiten.Image) {
	for _, am := range r.markers {
		m := am.m
		c := Fade(m.Color, float64(am.a))
		switch m.Shape {
		case component.MarkerCircle:
			r.fillCircle(screen, m.X, m.Y, m.Radius*float64(am.s), c)
		case component.MarkerRing:
			w := float32(max(m.Width, 2))
			vector.StrokeCircle(screen, float32(m.X), float32(m.Y), float32(m.Radius)*am.s, w, c, true)
		case component.MarkerLine:
			w := float32(max(m.Width, 1))
			vector.StrokeLine(screen, float32(m.X), float32(m.Y), float32(m.X2), float32(m.Y2), w, c, true)
		case component.MarkerRect:
			vector.DrawFilledRect(screen, float32(m.X-m.W/2), float32(m.Y-m.H/2), float32(m.W), float32(m.H), c, true)
		}
	}
}

// fillCircle заливает круг через путь и треугольники с цветом в вершинах.
func (r *MarkerRenderer) fillCircle(target *ebiten.Image, x, y, radius float64, c color.RGBA) {
	if radius <= 0 {
		return
	}
	if r.fillImg == nil {
		r.fillImg = ebiten.NewImage(1, 1)
		r.fillImg.Fill(color.White)
	}
	path := vector.Path{}
	path.Arc(float32(x), float32(y), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	path.Close()

	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	for i := range r.vs {
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
