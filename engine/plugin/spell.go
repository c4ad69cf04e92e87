package plugin

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/inconsolata"

	"github.com/Rakly3/CursorDemo/engine/colorutil"
	"github.com/Rakly3/CursorDemo/engine/events"
	"github.com/Rakly3/CursorDemo/engine/mathutil"
	"github.com/Rakly3/CursorDemo/engine/particles"
)

const (
	spellStagger  = 0.5 // seconds between the first and last column lighting up
	spellDuration = 3.0 // seconds the click indicator lingers
)

// SpellPlugin writes a word in particles wherever the right mouse
// button is clicked. Columns light up left to right, hue-shifted
// across the word.
type SpellPlugin struct {
	Word  string  // empty: taken from config, then "cursor"
	Scale float64 // screen pixels per font pixel, default 4

	ctx    *Context
	points []mathutil.Vec2
	minX   float64
	maxX   float64

	clock   float64
	pending []delayedSpawn
	casts   []cast
}

type delayedSpawn struct {
	due float64
	p   particles.Particle
}

// cast is the fading ring drawn where a spell was triggered.
type cast struct {
	pos mathutil.Vec2
	age float64
}

func (sp *SpellPlugin) Info() Info {
	return Info{
		Name:        "Spell",
		Version:     "1.0.0",
		Author:      "CursorDemo",
		Description: "writes a word in sparkles on right-click",
		Events:      []events.Type{events.EvtRightClick},
	}
}

func (sp *SpellPlugin) Init(ctx *Context) error {
	sp.ctx = ctx
	if sp.Word == "" && ctx.Config != nil {
		sp.Word = ctx.Config.Str("Demo", "spell_word")
	}
	if sp.Word == "" {
		sp.Word = "cursor"
	}
	if sp.Scale <= 0 {
		sp.Scale = 4
	}

	sp.points = Stencil(sp.Word, inconsolata.Bold8x16)
	if len(sp.points) == 0 {
		return fmt.Errorf("word %q has no drawable pixels", sp.Word)
	}
	sp.minX, sp.maxX = sp.points[0].X, sp.points[0].X
	for _, pt := range sp.points[1:] {
		if pt.X < sp.minX {
			sp.minX = pt.X
		}
		if pt.X > sp.maxX {
			sp.maxX = pt.X
		}
	}
	return nil
}

func (sp *SpellPlugin) HandleEvent(e events.Event) {
	if e.Type != events.EvtRightClick {
		return
	}
	click, ok := e.Payload.(events.ClickPayload)
	if !ok {
		return
	}
	sp.castAt(click.Pos)
}

// castAt queues one particle per stencil pixel, staggered by column.
func (sp *SpellPlugin) castAt(pos mathutil.Vec2) {
	rng := sp.ctx.Rng
	span := sp.maxX - sp.minX
	for _, pt := range sp.points {
		nx := 0.0
		if span > 0 {
			nx = (pt.X - sp.minX) / span
		}
		start := colorutil.FromHSV(nx*300, 1, 1)

		p := particles.Particle{
			Pos:      pos.Add(pt.Scale(sp.Scale)),
			Vel:      mathutil.FromAngle(rng.Float64() * 2 * math.Pi).Scale(mathutil.R(2, 8).Random(rng)),
			Lifetime: mathutil.R(1.6, 2.4).Random(rng),
			Size:     2,
			SizeEnd:  0.5,
			Friction: 1.2,
			Start:    start,
			End:      start.Darken(0.6),
			Curve:    particles.CurveEaseOut,
		}
		sp.pending = append(sp.pending, delayedSpawn{
			due: sp.clock + nx*spellStagger,
			p:   p,
		})
	}
	sp.casts = append(sp.casts, cast{pos: pos})
}

func (sp *SpellPlugin) Update(dt float64) {
	if dt <= 0 {
		return
	}
	sp.clock += dt

	// Release queued particles whose column delay has passed.
	keep := sp.pending[:0]
	for _, d := range sp.pending {
		if d.due <= sp.clock {
			sp.ctx.System.Inject([]particles.Particle{d.p})
			continue
		}
		keep = append(keep, d)
	}
	sp.pending = keep

	live := sp.casts[:0]
	for _, c := range sp.casts {
		c.age += dt
		if c.age < spellDuration {
			live = append(live, c)
		}
	}
	sp.casts = live
}

// Draw paints a fading ring at each recent cast position.
func (sp *SpellPlugin) Draw(screen *ebiten.Image) {
	for _, c := range sp.casts {
		fade := 1 - c.age/spellDuration
		if fade <= 0 {
			continue
		}
		clr := colorutil.White.WithAlpha(uint8(fade * 180))
		radius := float32(10 + c.age*20)
		vector.StrokeCircle(screen, float32(c.pos.X), float32(c.pos.Y), radius, 1.5, clr, false)
	}
}
