package kaleido

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/bmorelli/kaleido-go/internal/analyzer"
	"github.com/bmorelli/kaleido-go/internal/history"
	"github.com/bmorelli/kaleido-go/internal/navigate"
	"github.com/bmorelli/kaleido-go/internal/overlay"
	"github.com/bmorelli/kaleido-go/internal/palette"
	"github.com/bmorelli/kaleido-go/internal/registry"
	"github.com/bmorelli/kaleido-go/internal/snapshot"
)

// Tier separates the user-facing creative parameters from the low-level
// mathematical ones.
type Tier int

const (
	TierArtistic Tier = iota
	TierDebug
)

// NavContext selects which parameter sequence arrow-key/swipe selection walks.
type NavContext int

const (
	// NavArtistic walks only the artistic tier.
	NavArtistic NavContext = iota
	// NavAll walks every parameter of both tiers (debug mode).
	NavAll
)

// ColorMode selects how the renderer colors the pattern.
type ColorMode int

const (
	ColorModeMono ColorMode = iota
	ColorModePalette
	ColorModeSpectrum
)

// Parameter is the read view of one registered parameter: its metadata, its
// user-set base value, and its effective value after audio modulation.
type Parameter struct {
	Key      string
	Display  string
	Tier     Tier
	Category string
	Min      float64
	Max      float64
	Step     float64
	Default  float64
	Base     float64
	Value    float64
	Shadowed bool
}

// Category is one display section of the navigation index.
type Category struct {
	Name string
	Keys []string
}

// RenderState carries the per-frame flags and vectors the rendering engine
// takes alongside the uniform map.
type RenderState struct {
	PaletteEnabled  bool
	InvertColors    bool
	Palette         [4][3]float64
	PerformanceMode bool
}

type coreConfig struct {
	sampleRate   int
	undoCapacity int
	mappings     []Mapping
	randSeed     int64
	seeded       bool
}

func defaultCoreConfig() coreConfig {
	return coreConfig{sampleRate: 48000, undoCapacity: history.DefaultCapacity}
}

// Option configures a Core at construction time.
type Option func(*coreConfig)

// WithSampleRate sets the audio analysis sample rate (default 48000).
func WithSampleRate(rate int) Option {
	return func(cfg *coreConfig) { cfg.sampleRate = rate }
}

// WithUndoCapacity bounds the undo and redo stacks (default 50).
func WithUndoCapacity(n int) Option {
	return func(cfg *coreConfig) { cfg.undoCapacity = n }
}

// WithMappings installs a custom audio-to-parameter mapping table. A
// non-empty table supersedes the built-in preset entirely.
func WithMappings(mappings []Mapping) Option {
	return func(cfg *coreConfig) { cfg.mappings = append([]Mapping(nil), mappings...) }
}

// WithRandomSeed makes Randomize deterministic.
func WithRandomSeed(seed int64) Option {
	return func(cfg *coreConfig) { cfg.randSeed = seed; cfg.seeded = true }
}

// Core is the parameter and state engine: the registry of both tiers, the
// audio-modifier overlay, undo/redo history, the navigation index and the
// color presentation state. Construct one and hand it by reference to the
// rendering, audio and input collaborators; there is no ambient global.
//
// All methods are safe for concurrent use. Tap may be called from the audio
// thread while the frame loop calls Advance and Uniforms.
type Core struct {
	mu       sync.Mutex
	reg      *registry.Registry
	ov       *overlay.Overlay
	mapper   *overlay.Mapper
	hist     *history.History
	index    *navigate.Index
	cursor   navigate.Cursor
	palettes []palette.Palette
	color    palette.State
	an       *analyzer.Analyzer
	rng      *rand.Rand

	reactive bool
	paused   bool
	perfMode bool
	bands    analyzer.Bands

	travel     float64
	rotation   float64
	colorPhase float64
	elapsed    float64
}

// New builds a Core with the full parameter table at curated defaults.
func New(opts ...Option) (*Core, error) {
	cfg := defaultCoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sampleRate <= 0 {
		return nil, errors.New("sample rate must be positive")
	}
	reg, err := registry.New(registry.Table())
	if err != nil {
		return nil, fmt.Errorf("parameter table: %w", err)
	}
	c := &Core{
		reg:      reg,
		ov:       overlay.New(reg),
		mapper:   overlay.NewMapper(reg),
		hist:     history.New(cfg.undoCapacity),
		index:    navigate.Build(reg, registry.Categories()),
		palettes: palette.Builtin(),
		color:    palette.DefaultState(),
		an:       analyzer.New(cfg.sampleRate),
	}
	if len(cfg.mappings) > 0 {
		c.mapper.SetCustom(mappingsToInternal(cfg.mappings))
	}
	seed := cfg.randSeed
	if !cfg.seeded {
		seed = time.Now().UnixNano()
	}
	c.rng = rand.New(rand.NewSource(seed))
	return c, nil
}

// --- value resolution ---

// Value returns the effective value for key: the audio-overlay shadow when
// one is present, the base value otherwise. Rendering and UI code must read
// through Value, never through Base, so modulation applies uniformly.
func (c *Core) Value(key string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valueLocked(key)
}

func (c *Core) valueLocked(key string) (float64, bool) {
	if v, ok := c.ov.Value(key); ok {
		return v, true
	}
	return c.reg.BaseValue(key)
}

// Base returns the stored user-set value for key, ignoring the overlay.
func (c *Core) Base(key string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.BaseValue(key)
}

// Get returns the full read view for key.
func (c *Core) Get(key string) (Parameter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.reg.Get(key)
	if !ok {
		return Parameter{}, false
	}
	return c.viewLocked(d), true
}

// Parameters returns the read view of every parameter in navigation order.
func (c *Core) Parameters() []Parameter {
	c.mu.Lock()
	defer c.mu.Unlock()
	descs := c.reg.Descriptors()
	out := make([]Parameter, 0, len(descs))
	for _, d := range descs {
		out = append(out, c.viewLocked(d))
	}
	return out
}

func (c *Core) viewLocked(d registry.Descriptor) Parameter {
	base, _ := c.reg.BaseValue(d.Key)
	eff, shadowed := c.ov.Value(d.Key)
	if !shadowed {
		eff = base
	}
	return Parameter{
		Key:      d.Key,
		Display:  d.Display,
		Tier:     Tier(d.Tier),
		Category: d.Category,
		Min:      d.Min,
		Max:      d.Max,
		Step:     d.Step,
		Default:  d.Default,
		Base:     base,
		Value:    eff,
		Shadowed: shadowed,
	}
}

// --- mutation (no undo recording; see Record) ---

// Set clamps and stores a base value. It does not record undo state: a
// continuous gesture calls Record once at its start, then Set freely.
// Unknown keys and NaN proposals are no-ops returning false.
func (c *Core) Set(key string, v float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.Set(key, v)
}

// Adjust moves key by deltaSteps step increments.
func (c *Core) Adjust(key string, deltaSteps float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reg.Adjust(key, deltaSteps)
}

// --- discrete actions (record exactly once, then mutate) ---

// Reset restores key's curated default. Records one undo step.
func (c *Core) Reset(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.reg.Has(key) {
		return false
	}
	c.recordLocked()
	return c.reg.Reset(key)
}

// ResetAll restores every parameter of both tiers. Records one undo step.
func (c *Core) ResetAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordLocked()
	c.reg.ResetAll()
}

// Randomize re-rolls every artistic-tier parameter to a step-aligned value
// within its bounds. Records one undo step.
func (c *Core) Randomize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordLocked()
	for _, d := range c.reg.Descriptors() {
		if d.Tier != registry.TierArtistic {
			continue
		}
		steps := int((d.Max - d.Min) / d.Step)
		v := d.Min + float64(c.rng.Intn(steps+1))*d.Step
		c.reg.Set(d.Key, v)
	}
}

// CyclePalette moves the palette selection by delta. Records one undo step.
func (c *Core) CyclePalette(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordLocked()
	c.color.Cycle(c.palettes, delta)
}

// SetColorMode switches the coloring mode. Records one undo step.
func (c *Core) SetColorMode(mode ColorMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordLocked()
	c.color.Mode = palette.ColorMode(mode)
}

// ToggleInvert flips color inversion. Records one undo step.
func (c *Core) ToggleInvert() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordLocked()
	c.color.Invert = !c.color.Invert
}

// PaletteIndex returns the selected palette index.
func (c *Core) PaletteIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.color.Index
}

// CurrentColorMode returns the active coloring mode.
func (c *Core) CurrentColorMode() ColorMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ColorMode(c.color.Mode)
}

// --- undo/redo ---

// Record pushes the current state onto the undo stack and clears redo. Call
// exactly once before each discrete edit made through Set/Adjust — at
// keypress time or gesture start, never per drag increment.
func (c *Core) Record() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordLocked()
}

func (c *Core) recordLocked() {
	c.hist.Record(c.captureLocked())
}

// Undo restores the most recently recorded state. Returns false, changing
// nothing, when there is nothing to undo.
func (c *Core) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.hist.Undo(c.captureLocked())
	if !ok {
		return false
	}
	c.restoreLocked(s)
	return true
}

// Redo reverses the most recent Undo.
func (c *Core) Redo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.hist.Redo(c.captureLocked())
	if !ok {
		return false
	}
	c.restoreLocked(s)
	return true
}

// CanUndo reports whether an undo step is available.
func (c *Core) CanUndo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hist.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (c *Core) CanRedo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hist.CanRedo()
}

func (c *Core) captureLocked() snapshot.Snapshot {
	return snapshot.Capture(c.reg, snapshot.Aux{
		PaletteIndex:   c.color.Index,
		ColorMode:      c.color.Mode,
		InvertColors:   c.color.Invert,
		ArtisticCursor: c.cursor.Position(navigate.ContextArtistic),
		DebugCursor:    c.cursor.Position(navigate.ContextAll),
	})
}

func (c *Core) restoreLocked(s snapshot.Snapshot) {
	snapshot.Apply(c.reg, s)
	c.color.Index = s.Aux.PaletteIndex
	c.color.Mode = s.Aux.ColorMode
	c.color.Invert = s.Aux.InvertColors
	c.cursor.SetPosition(navigate.ContextArtistic, s.Aux.ArtisticCursor)
	c.cursor.SetPosition(navigate.ContextAll, s.Aux.DebugCursor)
}

// --- navigation ---

// Categories returns the ordered category grouping, artistic tier first.
func (c *Core) Categories() []Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	cats := c.index.Categories()
	out := make([]Category, 0, len(cats))
	for _, cat := range cats {
		keys := make([]string, len(cat.Keys))
		copy(keys, cat.Keys)
		out = append(out, Category{Name: cat.Name, Keys: keys})
	}
	return out
}

// Selected returns the key under the ctx navigation cursor.
func (c *Core) Selected(ctx NavContext) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor.Current(c.index, navContext(ctx))
}

// SelectStep moves the ctx cursor by delta with wraparound and returns the
// newly selected key.
func (c *Core) SelectStep(ctx NavContext, delta int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor.Step(c.index, navContext(ctx), delta)
}

func navContext(ctx NavContext) navigate.Context {
	if ctx == NavArtistic {
		return navigate.ContextArtistic
	}
	return navigate.ContextAll
}

// --- audio reactivity ---

// Tap feeds interleaved stereo samples into the band analyzer. Safe to call
// from the audio thread.
func (c *Core) Tap(samples []float32) {
	c.an.Tap(samples)
}

// StartReactivity enables audio-driven modulation on the next Advance.
func (c *Core) StartReactivity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reactive = true
}

// StopReactivity disables modulation and clears the overlay wholesale, so
// every effective value reverts to its user-set base immediately. The
// analyzer is reset as if reactivity had never been enabled.
func (c *Core) StopReactivity() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reactive = false
	c.ov.ResetAll()
	c.mapper.Reset()
	c.an.Reset()
	c.bands = analyzer.Bands{}
}

// Reactive reports whether audio modulation is active.
func (c *Core) Reactive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reactive
}

// SetMappings replaces the custom mapping table at runtime. An empty table
// reverts to the built-in preset.
func (c *Core) SetMappings(mappings []Mapping) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mapper.SetCustom(mappingsToInternal(mappings))
}

// Mappings returns the custom mapping table (empty when the preset applies).
func (c *Core) Mappings() []Mapping {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mappingsFromInternal(c.mapper.Custom())
}

// Bands returns the most recent analysis frame for display.
func (c *Core) Bands() Bands {
	c.mu.Lock()
	defer c.mu.Unlock()
	return bandsFromInternal(c.bands)
}

// --- frame loop ---

// Advance runs one animation frame in the required order: analyze the
// freshest audio, recompute the overlay against current base values, then
// advance the time accumulators unless paused. Call once per frame before
// reading Uniforms.
func (c *Core) Advance(dt float64) {
	frame := c.an.Frame()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.bands = frame
	if c.reactive {
		c.mapper.Apply(c.ov, frame)
	}
	if c.paused {
		return
	}
	c.elapsed += dt
	if v, ok := c.valueLocked("fly_speed"); ok {
		c.travel += dt * v
	}
	if v, ok := c.valueLocked("rotation_speed"); ok {
		c.rotation += dt * v
	}
	if v, ok := c.valueLocked("color_shift_speed"); ok {
		c.colorPhase += dt * v
	}
}

// SetPaused stops or resumes time accumulation. Parameter edits and audio
// modulation keep working while paused.
func (c *Core) SetPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = paused
}

// Paused reports whether time accumulation is stopped.
func (c *Core) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// SetPerformanceMode toggles the reduced-quality rendering flag.
func (c *Core) SetPerformanceMode(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.perfMode = on
}

// Uniforms fills dst with every parameter's effective value keyed by its
// uniform name ("u_" + key), plus the time accumulators u_time, u_travel,
// u_rotation and u_color_phase. Pass the same map each frame to avoid
// reallocation; a nil dst allocates one.
func (c *Core) Uniforms(dst map[string]float64) map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dst == nil {
		dst = make(map[string]float64, c.reg.Len()+4)
	}
	for _, d := range c.reg.Descriptors() {
		v, _ := c.valueLocked(d.Key)
		dst[d.UniformName()] = v
	}
	dst["u_time"] = c.elapsed
	dst["u_travel"] = c.travel
	dst["u_rotation"] = c.rotation
	dst["u_color_phase"] = c.colorPhase
	return dst
}

// Render returns the per-frame flags and palette vectors for the renderer.
func (c *Core) Render() RenderState {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.color.Current(c.palettes)
	var coeffs [4][3]float64
	for i, vec := range p.Coefficients() {
		coeffs[i] = vec
	}
	return RenderState{
		PaletteEnabled:  c.color.Mode == palette.ColorModePalette,
		InvertColors:    c.color.Invert,
		Palette:         coeffs,
		PerformanceMode: c.perfMode,
	}
}
