package plugin

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Rakly3/CursorDemo/engine/config"
	"github.com/Rakly3/CursorDemo/engine/events"
	"github.com/Rakly3/CursorDemo/engine/particles"
)

// Info describes a plugin for listings and logs.
type Info struct {
	Name        string
	Version     string
	Author      string
	Description string
	Events      []events.Type // event types the plugin wants delivered
}

// Context is the shared application state handed to plugins at load.
type Context struct {
	System *particles.System
	Bus    *events.Bus
	Config *config.Manager
	Rng    *rand.Rand
}

// Plugin extends the demo with extra behavior. Init runs once at
// registration; a non-nil error leaves the plugin disabled. Update
// runs every simulation step, and HandleEvent receives the event
// types named in Info.
type Plugin interface {
	Info() Info
	Init(ctx *Context) error
	Update(dt float64)
	HandleEvent(e events.Event)
}

// Drawer is implemented by plugins that paint on top of the scene.
type Drawer interface {
	Draw(screen *ebiten.Image)
}

type entry struct {
	plugin  Plugin
	enabled bool
	failed  bool
}

// Registry loads plugins and fans the demo's life cycle out to them.
type Registry struct {
	ctx     *Context
	entries []*entry
}

func NewRegistry(ctx *Context) *Registry {
	return &Registry{ctx: ctx}
}

// Register initializes p and wires its declared events to the bus.
// A failing Init logs and keeps the plugin disabled rather than
// aborting the demo.
func (r *Registry) Register(p Plugin) {
	info := p.Info()
	for _, e := range r.entries {
		if e.plugin.Info().Name == info.Name {
			log.Printf("plugin: %q already registered, skipping", info.Name)
			return
		}
	}

	if err := p.Init(r.ctx); err != nil {
		log.Printf("plugin: %q v%s failed to load, disabled: %v", info.Name, info.Version, err)
		r.entries = append(r.entries, &entry{plugin: p, failed: true})
		return
	}

	ent := &entry{plugin: p, enabled: true}
	r.entries = append(r.entries, ent)
	if r.ctx.Bus != nil {
		for _, t := range info.Events {
			r.ctx.Bus.On(t, func(e events.Event) {
				if ent.enabled {
					ent.plugin.HandleEvent(e)
				}
			})
		}
	}
	log.Printf("plugin: loaded %q v%s (%s)", info.Name, info.Version, info.Description)
}

// Update steps every enabled plugin.
func (r *Registry) Update(dt float64) {
	for _, e := range r.entries {
		if e.enabled {
			e.plugin.Update(dt)
		}
	}
}

// Draw lets enabled plugins paint overlays, in registration order.
func (r *Registry) Draw(screen *ebiten.Image) {
	for _, e := range r.entries {
		if !e.enabled {
			continue
		}
		if d, ok := e.plugin.(Drawer); ok {
			d.Draw(screen)
		}
	}
}

// SetEnabled toggles a plugin by name and reports whether the toggle
// applied. A plugin whose Init failed stays disabled.
func (r *Registry) SetEnabled(name string, enabled bool) bool {
	for _, e := range r.entries {
		if e.plugin.Info().Name == name {
			if e.failed {
				return false
			}
			e.enabled = enabled
			return true
		}
	}
	return false
}

// Enabled reports whether the named plugin is loaded and active.
func (r *Registry) Enabled(name string) bool {
	for _, e := range r.entries {
		if e.plugin.Info().Name == name {
			return e.enabled
		}
	}
	return false
}

// List returns the Info of every registered plugin, disabled included.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.plugin.Info())
	}
	return out
}
