// render.go
package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"rotor/v2/config"
	rlog "rotor/v2/log"
	"rotor/v2/orient"
)

// viewLimit is the half-extent of the visible cube, matching the longest axis segment.
const viewLimit = 1.5

type RingRenderer struct {
	acc        orient.Accumulator
	scene      []*orient.Geometry
	frames     []orient.Frame
	current    orient.Orientation
	camera     orient.Matrix3
	frameCount int
	maxFrames  int
	paused     bool
	style      int
	log        rlog.Logger
}

func NewRingRenderer(cfg *config.Config, logger rlog.Logger) (*RingRenderer, error) {
	acc, err := cfg.Accumulator()
	if err != nil {
		return nil, fmt.Errorf("accumulator: %w", err)
	}
	scene, err := cfg.Scene()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &RingRenderer{
		acc:       acc,
		scene:     scene,
		current:   orient.IdentityQuaternion(),
		camera:    cameraMatrix(cfg.View.ElevationDeg, cfg.View.AzimuthDeg),
		maxFrames: cfg.Frames,
		log:       logger.WithField("rep", acc.Representation()),
	}, nil
}

// cameraMatrix maps world coordinates to (right, up, toward viewer) for a
// camera at the given elevation and azimuth, in degrees.
func cameraMatrix(elevDeg, azimDeg float64) orient.Matrix3 {
	se, ce := math.Sincos(elevDeg * math.Pi / 180)
	sa, ca := math.Sincos(azimDeg * math.Pi / 180)
	return orient.Matrix3{M: [3][3]float64{
		{-sa, ca, 0},
		{-se * ca, -se * sa, ce},
		{ce * ca, ce * sa, se},
	}}
}

// update advances the orientation once and re-transforms every object with it.
func (rr *RingRenderer) update() {
	o := rr.acc.Advance()
	rr.current = o
	rr.frames = orient.TransformAll(o, rr.scene)
	rr.frameCount++

	if rr.frameCount%100 == 0 {
		a := rr.acc.Angles()
		rr.log.WithField("frame", rr.frameCount).
			Debugf("angles=(%.3f, %.3f, %.3f) health=%.3e", a.X, a.Y, a.Z, orientationHealth(o))
	}
}

func (rr *RingRenderer) done() bool {
	return rr.maxFrames > 0 && rr.frameCount >= rr.maxFrames
}

// orientationHealth is |‖q‖−1| for quaternions and the orthonormality error for matrices.
func orientationHealth(o orient.Orientation) float64 {
	switch o := o.(type) {
	case orient.Quaternion:
		return o.NormError()
	case orient.Matrix3:
		return o.OrthonormalityError()
	}
	return math.NaN()
}

// Shading sets, nearest first.
var shadingStyles = [][]rune{
	{'█', '▓', '▒', '░', '·'},
	{'●', '◉', '◎', '○', '◦', '∘', '·'},
	{'@', '#', '%', '*', '+', '=', '-', ':', '.'},
	{'■', '▪', '□', '▫', '·'},
}

var axisGlyphs = []rune{'•', '∙', '·'}

func getDepthCharWithStyle(depth float64, chars []rune) rune {
	depth = clamp01(depth)
	idx := int((1 - depth) * float64(len(chars)-1))
	return chars[idx]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Object colors by slot: each ring and its spin axis share a color.
var baseColors = []colorful.Color{
	{R: 214.0 / 255, G: 39.0 / 255, B: 40.0 / 255},
	{R: 44.0 / 255, G: 160.0 / 255, B: 44.0 / 255},
	{R: 31.0 / 255, G: 119.0 / 255, B: 180.0 / 255},
}

var farColor = colorful.Color{R: 0.08, G: 0.08, B: 0.1}

// shadeColor fades base toward the background as depth goes from near (1) to far (0).
func shadeColor(base colorful.Color, depth float64) tcell.Color {
	c := farColor.BlendLab(base, 0.25+0.75*clamp01(depth)).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

type cell struct {
	depth float64
	char  rune
	color tcell.Color
}

type projector struct {
	camera           orient.Matrix3
	scale            float64
	centerX, centerY float64
}

func newProjector(camera orient.Matrix3, w, h int) projector {
	// Terminal cells are about twice as tall as they are wide.
	scale := math.Min(float64(w)/(4*viewLimit), float64(h-4)/(2*viewLimit))
	return projector{camera: camera, scale: scale, centerX: float64(w) / 2, centerY: float64(h) / 2}
}

// project returns screen coordinates and a depth normalized to [0,1], 1 nearest.
func (p projector) project(pt orient.Point3D) (float64, float64, float64) {
	v := p.camera.MulVec(pt)
	sx := p.centerX + v.X*p.scale*2
	sy := p.centerY - v.Y*p.scale
	return sx, sy, (v.Z + viewLimit) / (2 * viewLimit)
}

func (rr *RingRenderer) render(s tcell.Screen, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	drawText(s, 1, 1, style, fmt.Sprintf("ROTOR %s X→Y→Z | Space:pause S:style Q:quit", rr.acc.Representation()))

	proj := newProjector(rr.camera, w, h)
	zbuf := make(map[[2]int]cell)
	plot := func(x, y int, c cell) {
		if x < 0 || x >= w || y < 3 || y >= h-2 {
			return
		}
		k := [2]int{x, y}
		if old, ok := zbuf[k]; ok && old.depth >= c.depth {
			return
		}
		zbuf[k] = c
	}

	for i, f := range rr.frames {
		base := baseColors[i%len(baseColors)]
		glyphs := shadingStyles[rr.style%len(shadingStyles)]
		if rr.scene[i].Kind() == orient.KindSegment {
			glyphs = axisGlyphs
		}
		for j := 1; j < len(f); j++ {
			x0, y0, d0 := proj.project(f[j-1])
			x1, y1, d1 := proj.project(f[j])
			steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
			if steps < 1 {
				steps = 1
			}
			for k := 0; k <= steps; k++ {
				t := float64(k) / float64(steps)
				d := d0 + t*(d1-d0)
				plot(int(math.Round(x0+t*(x1-x0))), int(math.Round(y0+t*(y1-y0))), cell{
					depth: d,
					char:  getDepthCharWithStyle(d, glyphs),
					color: shadeColor(base, d),
				})
			}
		}
	}

	for k, c := range zbuf {
		s.SetContent(k[0], k[1], c.char, nil, tcell.StyleDefault.Foreground(c.color))
	}

	a := rr.acc.Angles()
	status := "running"
	if rr.paused {
		status = "paused"
	}
	info := fmt.Sprintf("Frame: %d | Angles: (%.2f, %.2f, %.2f) rad | Health: %.1e | Style: %d | %s",
		rr.frameCount, a.X, a.Y, a.Z, orientationHealth(rr.current), rr.style+1, status)
	drawText(s, 1, h-2, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
}

type action int

const (
	actionPause action = iota
	actionStyle
)

func (rr *RingRenderer) handle(a action) {
	switch a {
	case actionPause:
		rr.paused = !rr.paused
		rr.log.Infof("paused=%v at frame %d", rr.paused, rr.frameCount)
	case actionStyle:
		rr.style = (rr.style + 1) % len(shadingStyles)
	}
}

func runGraphics(cfg *config.Config, logger rlog.Logger) error {
	renderer, err := NewRingRenderer(cfg, logger)
	if err != nil {
		return err
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	return renderLoop(s, renderer, time.Duration(cfg.IntervalMs)*time.Millisecond)
}

func renderLoop(s tcell.Screen, renderer *RingRenderer, interval time.Duration) error {
	quit := make(chan struct{})
	done := make(chan struct{})
	defer close(done)
	actions := make(chan action, 8)

	// Input handler
	go func() {
		defer close(quit)
		for {
			ev := s.PollEvent()
			switch ev := ev.(type) {
			case nil:
				return
			case *tcell.EventKey:
				var a action
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return
				case tcell.KeyRune:
					switch ev.Rune() {
					case 'q', 'Q':
						return
					case ' ', 'p', 'P':
						a = actionPause
					case 's', 'S':
						a = actionStyle
					default:
						continue
					}
				default:
					continue
				}
				select {
				case actions <- a:
				case <-done:
					return
				}
			case *tcell.EventResize:
				s.Sync()
			}
		}
	}()

	renderer.log.Infof("starting: %d objects, interval %s", len(renderer.scene), interval)

	// Render loop
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			renderer.log.Infof("quit at frame %d", renderer.frameCount)
			return nil
		case a := <-actions:
			renderer.handle(a)
		case <-ticker.C:
			if !renderer.paused {
				renderer.update()
			}
			if renderer.done() {
				renderer.log.Infof("frame limit %d reached", renderer.maxFrames)
				return nil
			}

			s.Clear()
			w, h := s.Size()
			if w <= 15 || h <= 8 {
				continue
			}

			renderer.render(s, w, h)
			s.Show()
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
