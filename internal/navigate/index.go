// Package navigate derives the ordered category grouping used for sequential
// parameter selection. The index is a pure function of the registry's static
// key set and is built once at startup.
package navigate

import "github.com/bmorelli/kaleido-go/internal/registry"

// Category is one display section: a name and its keys in walk order.
type Category struct {
	Name string
	Keys []string
}

// Context selects which key sequence a cursor walks.
type Context int

const (
	// ContextArtistic walks only the artistic tier.
	ContextArtistic Context = iota
	// ContextAll walks every key of both tiers (debug mode).
	ContextAll
)

// Index is the ordered grouping of parameter keys by category, with the
// artistic tier always leading.
type Index struct {
	categories []Category
	flat       []string
	artistic   []string
}

// Build groups reg's keys into categoryOrder. Categories with no keys are
// dropped. Key order within a category follows registry declaration order.
func Build(reg *registry.Registry, categoryOrder []string) *Index {
	byCategory := make(map[string][]string)
	for _, d := range reg.Descriptors() {
		byCategory[d.Category] = append(byCategory[d.Category], d.Key)
	}
	ix := &Index{}
	for _, name := range categoryOrder {
		keys := byCategory[name]
		if len(keys) == 0 {
			continue
		}
		ix.categories = append(ix.categories, Category{Name: name, Keys: keys})
		ix.flat = append(ix.flat, keys...)
	}
	for _, d := range reg.Descriptors() {
		if d.Tier == registry.TierArtistic {
			ix.artistic = append(ix.artistic, d.Key)
		}
	}
	return ix
}

// Categories returns the ordered category list.
func (ix *Index) Categories() []Category {
	return ix.categories
}

// Flatten returns every key in index order.
func (ix *Index) Flatten() []string {
	out := make([]string, len(ix.flat))
	copy(out, ix.flat)
	return out
}

func (ix *Index) sequence(ctx Context) []string {
	if ctx == ContextArtistic {
		return ix.artistic
	}
	return ix.flat
}

// Cursor tracks one selection position per context. Switching context keeps
// each cursor where it was; positions are clamped into range on every use so
// they can never go out of bounds.
type Cursor struct {
	pos [2]int
}

// Current returns the selected key for ctx, or "" for an empty sequence.
func (c *Cursor) Current(ix *Index, ctx Context) string {
	seq := ix.sequence(ctx)
	if len(seq) == 0 {
		return ""
	}
	c.clamp(len(seq), ctx)
	return seq[c.pos[ctx]]
}

// Step moves the ctx cursor by delta with wraparound at both ends and returns
// the newly selected key.
func (c *Cursor) Step(ix *Index, ctx Context, delta int) string {
	seq := ix.sequence(ctx)
	n := len(seq)
	if n == 0 {
		return ""
	}
	c.clamp(n, ctx)
	c.pos[ctx] = ((c.pos[ctx]+delta)%n + n) % n
	return seq[c.pos[ctx]]
}

// Position returns the raw cursor position for ctx.
func (c *Cursor) Position(ctx Context) int {
	return c.pos[ctx]
}

// SetPosition restores a cursor position (from a snapshot); out-of-range
// values are clamped on the next read.
func (c *Cursor) SetPosition(ctx Context, pos int) {
	if pos < 0 {
		pos = 0
	}
	c.pos[ctx] = pos
}

func (c *Cursor) clamp(n int, ctx Context) {
	if c.pos[ctx] >= n {
		c.pos[ctx] = n - 1
	}
	if c.pos[ctx] < 0 {
		c.pos[ctx] = 0
	}
}
