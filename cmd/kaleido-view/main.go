package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bmorelli/kaleido-go"
	"github.com/bmorelli/kaleido-go/internal/audio"
)

const (
	windowW      = 1280
	windowH      = 800
	minWindowW   = 960
	minWindowH   = 640
	uiSampleRate = 48000
	generatorBPM = 122

	textScale = 2
	charW     = 7 * textScale
	lineH     = 14 * textScale

	// Frames a key must be held before adjust auto-repeat kicks in.
	repeatDelay    = 18
	repeatInterval = 3
)

var (
	panelColor   = color.RGBA{24, 24, 32, 200}
	borderColor  = color.RGBA{90, 96, 120, 255}
	highlightBg  = color.RGBA{0, 64, 128, 220}
	shadowAccent = color.RGBA{120, 200, 255, 255}
	beatColor    = color.RGBA{255, 120, 80, 255}
)

// shaderSrc is the fractal fragment shader. It consumes the engine's uniform
// map (translated to Kage identifiers) plus the palette coefficients from
// the render state.
const shaderSrc = `//kage:unit pixels

package main

var Resolution vec2
var Time float
var Travel float
var Rotation float
var ColorPhase float
var Zoom float
var Segments float
var Radius float
var Layers float
var Density float
var Contrast float
var Glow float
var Invert float
var UsePalette float
var PalA vec3
var PalB vec3
var PalC vec3
var PalD vec3

func rot(p vec2, a float) vec2 {
	c := cos(a)
	s := sin(a)
	return vec2(p.x*c-p.y*s, p.x*s+p.y*c)
}

func cosPalette(t float) vec3 {
	return PalA + PalB*cos(6.28318*(PalC*t+PalD))
}

func Fragment(dst vec4, src vec2, col vec4) vec4 {
	uv := (dst.xy - Resolution*0.5) / Resolution.y
	uv *= max(Zoom, 0.05)
	uv = rot(uv, Rotation)

	seg := 6.28318 / max(Segments, 2.0)
	a := atan2(uv.y, uv.x)
	a = abs(mod(a, seg) - seg*0.5)
	r := length(uv)
	uv = vec2(cos(a), sin(a)) * r

	acc := 0.0
	for i := 0.0; i < 50.0; i += 1.0 {
		if i >= Layers {
			break
		}
		z := fract(i/max(Layers, 1.0) + fract(Travel*0.1))
		p := uv * mix(9.0, 0.6, z) * max(Density, 0.05)
		cell := fract(p+vec2(z*3.7, z*1.9)) - 0.5
		d := abs(length(cell) - Radius)
		fade := smoothstep(1.0, 0.82, z) * smoothstep(0.0, 0.12, z)
		acc += fade * smoothstep(0.07, 0.0, d)
	}

	v := clamp(acc/(max(Layers, 1.0)*0.3), 0.0, 1.0)
	v = pow(v, 1.0/max(Contrast, 0.1))
	out := vec3(v)
	if UsePalette > 0.5 {
		out = cosPalette(v*0.8+ColorPhase+Time*0.01) * (0.25 + 0.75*v)
	}
	out += Glow * v * vec3(0.25, 0.35, 0.55)
	if Invert > 0.5 {
		out = vec3(1.0) - out
	}
	return vec4(clamp(out, 0.0, 1.0), 1.0)
}
`

type game struct {
	core   *kaleido.Core
	gen    *audio.Generator
	player *audio.Player
	shader *ebiten.Shader

	uniforms   map[string]float64
	shaderOpts map[string]any

	navCtx  kaleido.NavContext
	showHUD bool

	status    string
	statusErr bool

	frameTick int

	statePath string

	textCache map[string]*ebiten.Image
	viewW     int
	viewH     int
}

func newGame(statePath string) (*game, error) {
	core, err := kaleido.New(kaleido.WithSampleRate(uiSampleRate))
	if err != nil {
		return nil, err
	}
	shader, err := ebiten.NewShader([]byte(shaderSrc))
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	gen := audio.NewGenerator(uiSampleRate, generatorBPM, core.Tap)
	player, err := audio.NewPlayer(uiSampleRate, gen)
	if err != nil {
		return nil, err
	}

	g := &game{
		core:       core,
		gen:        gen,
		player:     player,
		shader:     shader,
		shaderOpts: make(map[string]any, 20),
		showHUD:    true,
		status:     "Ready (H toggles overlay)",
		statePath:  statePath,
		textCache:  make(map[string]*ebiten.Image, 1024),
		viewW:      windowW,
		viewH:      windowH,
	}
	if statePath != "" {
		if data, err := os.ReadFile(statePath); err == nil {
			if _, err := core.LoadDocument(data); err != nil {
				g.setError("state: " + err.Error())
			} else {
				g.setStatus("Loaded " + statePath)
			}
		}
	}
	return g, nil
}

func (g *game) Update() error {
	g.frameTick++
	g.handleKeys()
	g.core.Advance(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.drawFractal(screen)
	if !g.showHUD {
		return
	}
	l := g.layoutRects()
	g.drawParams(screen, l.params)
	g.drawSpectrum(screen, l.spectrum)
	g.drawStatus(screen, l.status)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	if outsideW < minWindowW {
		outsideW = minWindowW
	}
	if outsideH < minWindowH {
		outsideH = minWindowH
	}
	g.viewW = outsideW
	g.viewH = outsideH
	return outsideW, outsideH
}

func (g *game) Close() { _ = g.player.Stop() }

type uiLayout struct {
	params, spectrum, status image.Rectangle
}

func (g *game) layoutRects() uiLayout {
	pad := 16
	statusH := 40
	paramsW := 460
	specW := 340
	specH := 140

	statusTop := g.viewH - pad - statusH
	return uiLayout{
		params:   image.Rect(pad, pad, pad+paramsW, statusTop-12),
		spectrum: image.Rect(g.viewW-pad-specW, statusTop-12-specH, g.viewW-pad, statusTop-12),
		status:   image.Rect(pad, statusTop, g.viewW-pad, statusTop+statusH),
	}
}

// --- input ---

func (g *game) handleKeys() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if g.navCtx == kaleido.NavArtistic {
			g.navCtx = kaleido.NavAll
			g.setStatus("Debug tier unlocked")
		} else {
			g.navCtx = kaleido.NavArtistic
			g.setStatus("Artistic tier")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.showHUD = !g.showHUD
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.toggleReactivity()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.core.SetPaused(!g.core.Paused())
		if g.core.Paused() {
			g.setStatus("Paused")
		} else {
			g.setStatus("Running")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		perf := !g.core.Render().PerformanceMode
		g.core.SetPerformanceMode(perf)
		g.setStatus(fmt.Sprintf("Performance mode: %v", perf))
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.core.Randomize()
		g.setStatus("Randomized artistic parameters")
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if shift {
			g.core.ResetAll()
			g.setStatus("All parameters reset")
		} else {
			key := g.core.Selected(g.navCtx)
			g.core.Reset(key)
			g.setStatus("Reset " + key)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.core.CyclePalette(1)
		g.setStatus(fmt.Sprintf("Palette %d", g.core.PaletteIndex()))
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		mode := (g.core.CurrentColorMode() + 1) % 3
		g.core.SetColorMode(mode)
		g.setStatus("Color mode: " + colorModeLabel(mode))
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		g.core.ToggleInvert()
		g.setStatus("Inverted colors")
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		if g.core.Undo() {
			g.setStatus("Undo")
		} else {
			g.setStatus("Nothing to undo")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		if g.core.Redo() {
			g.setStatus("Redo")
		} else {
			g.setStatus("Nothing to redo")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.saveState()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.loadState()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.setStatus("Selected " + g.core.SelectStep(g.navCtx, -1))
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.setStatus("Selected " + g.core.SelectStep(g.navCtx, 1))
	}

	g.handleAdjust(shift)
}

// handleAdjust turns held arrow keys into step adjustments. One undo step is
// recorded when the key goes down; the whole hold is a single gesture.
func (g *game) handleAdjust(shift bool) {
	delta := 0.0
	held := 0
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		delta = 1
		held = inpututil.KeyPressDuration(ebiten.KeyRight)
	} else if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		delta = -1
		held = inpututil.KeyPressDuration(ebiten.KeyLeft)
	}
	if delta == 0 {
		return
	}
	if shift {
		delta *= 10
	}

	fire := held == 1
	if held > repeatDelay && (held-repeatDelay)%repeatInterval == 0 {
		fire = true
	}
	if !fire {
		return
	}
	if held == 1 {
		g.core.Record()
	}
	key := g.core.Selected(g.navCtx)
	if g.core.Adjust(key, delta) {
		v, _ := g.core.Base(key)
		g.setStatus(fmt.Sprintf("%s = %.3f", key, v))
	}
}

func (g *game) toggleReactivity() {
	if g.core.Reactive() {
		g.core.StopReactivity()
		g.player.Pause()
		g.setStatus("Audio reactivity off")
		return
	}
	g.core.StartReactivity()
	g.player.Play()
	g.setStatus("Audio reactivity on (built-in generator)")
}

func (g *game) saveState() {
	if g.statePath == "" {
		g.setError("no -state path configured")
		return
	}
	data, err := g.core.SaveDocument()
	if err != nil {
		g.setError(err.Error())
		return
	}
	if err := os.WriteFile(g.statePath, data, 0o644); err != nil {
		g.setError(err.Error())
		return
	}
	g.setStatus("Saved " + g.statePath)
}

func (g *game) loadState() {
	if g.statePath == "" {
		g.setError("no -state path configured")
		return
	}
	data, err := os.ReadFile(g.statePath)
	if err != nil {
		g.setError(err.Error())
		return
	}
	skipped, err := g.core.LoadDocument(data)
	if err != nil {
		g.setError(err.Error())
		return
	}
	if len(skipped) > 0 {
		g.setStatus(fmt.Sprintf("Loaded %s (%d unknown keys skipped)", g.statePath, len(skipped)))
		return
	}
	g.setStatus("Loaded " + g.statePath)
}

// --- rendering ---

func (g *game) drawFractal(screen *ebiten.Image) {
	u := g.core.Uniforms(g.uniforms)
	g.uniforms = u
	rs := g.core.Render()

	layers := u["u_layer_count"]
	density := u["u_pattern_density"]
	if rs.PerformanceMode {
		layers = layers * 0.5
		if layers < 1 {
			layers = 1
		}
		density *= 0.75
	}

	opts := g.shaderOpts
	opts["Resolution"] = []float32{float32(g.viewW), float32(g.viewH)}
	opts["Time"] = float32(u["u_time"])
	opts["Travel"] = float32(u["u_travel"])
	opts["Rotation"] = float32(u["u_rotation"])
	opts["ColorPhase"] = float32(u["u_color_phase"])
	opts["Zoom"] = float32(u["u_zoom_level"])
	opts["Segments"] = float32(u["u_kaleidoscope_segments"])
	opts["Radius"] = float32(u["u_truchet_radius"])
	opts["Layers"] = float32(layers)
	opts["Density"] = float32(density)
	opts["Contrast"] = float32(u["u_contrast"])
	opts["Glow"] = float32(u["u_glow_intensity"])
	opts["Invert"] = boolUniform(rs.InvertColors)
	opts["UsePalette"] = boolUniform(rs.PaletteEnabled)
	opts["PalA"] = vec3Uniform(rs.Palette[0])
	opts["PalB"] = vec3Uniform(rs.Palette[1])
	opts["PalC"] = vec3Uniform(rs.Palette[2])
	opts["PalD"] = vec3Uniform(rs.Palette[3])

	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = opts
	screen.DrawRectShader(g.viewW, g.viewH, g.shader, op)
}

func boolUniform(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func vec3Uniform(v [3]float64) []float32 {
	return []float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

func (g *game) drawParams(screen *ebiten.Image, rect image.Rectangle) {
	g.drawPanel(screen, rect)

	title := "Parameters [artistic]"
	if g.navCtx == kaleido.NavAll {
		title = "Parameters [all tiers]"
	}
	g.drawText(screen, title, rect.Min.X+8, rect.Min.Y+8)

	keys := g.visibleKeys()
	selected := g.core.Selected(g.navCtx)
	selIdx := 0
	for i, k := range keys {
		if k == selected {
			selIdx = i
			break
		}
	}

	top := rect.Min.Y + 8 + lineH*2
	maxLines := (rect.Max.Y - top - 8) / lineH
	if maxLines < 1 {
		maxLines = 1
	}
	scroll := 0
	if selIdx >= maxLines {
		scroll = selIdx - maxLines + 1
	}
	maxChars := max(8, (rect.Dx()-16)/charW)

	for i := 0; i < maxLines; i++ {
		idx := scroll + i
		if idx >= len(keys) {
			break
		}
		p, ok := g.core.Get(keys[idx])
		if !ok {
			continue
		}
		y := top + i*lineH
		if p.Key == selected {
			ebitenutil.DrawRect(screen, float64(rect.Min.X+4), float64(y-2), float64(rect.Dx()-8), float64(lineH), highlightBg)
		}
		line := fmt.Sprintf("%-24s %8.3f", p.Display, p.Value)
		if p.Shadowed {
			line += " *"
		}
		g.drawText(screen, shortenEnd(line, maxChars), rect.Min.X+8, y)
	}
}

// visibleKeys flattens the navigation order for the active context.
func (g *game) visibleKeys() []string {
	var keys []string
	for _, cat := range g.core.Categories() {
		for _, k := range cat.Keys {
			if g.navCtx == kaleido.NavArtistic {
				if p, ok := g.core.Get(k); !ok || p.Tier != kaleido.TierArtistic {
					continue
				}
			}
			keys = append(keys, k)
		}
	}
	return keys
}

func (g *game) drawSpectrum(screen *ebiten.Image, rect image.Rectangle) {
	g.drawPanel(screen, rect)
	b := g.core.Bands()
	levels := [10]float64{
		b.SubBass, b.LowBass, b.HighBass, b.LowMid, b.CenterMid,
		b.HighMid, b.Presence, b.Brilliance, b.Air, b.Ultra,
	}

	inner := image.Rect(rect.Min.X+8, rect.Min.Y+8, rect.Max.X-8, rect.Max.Y-8)
	barW := float64(inner.Dx()) / float64(len(levels))
	for i, v := range levels {
		h := v * float64(inner.Dy()-2)
		if h < 1 {
			h = 1
		}
		x := float64(inner.Min.X) + float64(i)*barW
		y := float64(inner.Max.Y) - h
		col := shadowAccent
		if b.Beat {
			col = beatColor
		}
		ebitenutil.DrawRect(screen, x+1, y, barW-2, h, col)
	}
}

func (g *game) drawStatus(screen *ebiten.Image, rect image.Rectangle) {
	g.drawPanel(screen, rect)
	msg := "Status: " + g.status
	if g.statusErr {
		msg = "Status: ERROR - " + g.status
	}
	maxChars := max(8, (rect.Dx()-16)/charW)
	g.drawText(screen, shortenEnd(msg, maxChars), rect.Min.X+8, rect.Min.Y+6)
}

func (g *game) setError(msg string) {
	g.status = msg
	g.statusErr = true
}

func (g *game) setStatus(msg string) {
	g.status = msg
	g.statusErr = false
}

func colorModeLabel(mode kaleido.ColorMode) string {
	switch mode {
	case kaleido.ColorModeMono:
		return "mono"
	case kaleido.ColorModePalette:
		return "palette"
	case kaleido.ColorModeSpectrum:
		return "spectrum"
	}
	return "unknown"
}

func (g *game) drawPanel(screen *ebiten.Image, rect image.Rectangle) {
	ebitenutil.DrawRect(screen, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), panelColor)
	x := float64(rect.Min.X)
	y := float64(rect.Min.Y)
	w := float64(rect.Dx())
	h := float64(rect.Dy())
	ebitenutil.DrawRect(screen, x, y, w, 1, borderColor)
	ebitenutil.DrawRect(screen, x, y+h-1, w, 1, borderColor)
	ebitenutil.DrawRect(screen, x, y, 1, h, borderColor)
	ebitenutil.DrawRect(screen, x+w-1, y, 1, h, borderColor)
}

func (g *game) drawText(screen *ebiten.Image, msg string, x int, y int) {
	if msg == "" {
		return
	}
	img := g.textCache[msg]
	if img == nil {
		w := max(1, len([]rune(msg))*7)
		img = ebiten.NewImage(w, 14)
		ebitenutil.DebugPrintAt(img, msg, 0, 0)
		if len(g.textCache) > 3000 {
			g.textCache = make(map[string]*ebiten.Image, 1024)
		}
		g.textCache[msg] = img
	}
	opS := &ebiten.DrawImageOptions{}
	opS.GeoM.Scale(textScale, textScale)
	opS.GeoM.Translate(float64(x+2), float64(y+2))
	opS.ColorScale.Scale(0, 0, 0, 1)
	screen.DrawImage(img, opS)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}

func shortenEnd(s string, maxChars int) string {
	r := []rune(s)
	if len(r) <= maxChars {
		return s
	}
	if maxChars <= 3 {
		return string(r[:max(0, maxChars)])
	}
	return string(r[:maxChars-3]) + "..."
}

func main() {
	statePath := flag.String("state", "kaleido_state.json", "state document used by S (save) and L (load)")
	flag.Parse()

	g, err := newGame(*statePath)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(minWindowW, minWindowH, -1, -1)
	ebiten.SetWindowTitle("kaleido-go")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
