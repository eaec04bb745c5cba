package desky

import (
	"github.com/rs/zerolog"

	"github.com/grindlemire/go-desky/internal/debug"
)

// DefaultMaxLayoutIterations bounds the layout fixed point of every panel.
const DefaultMaxLayoutIterations = 100

// PanelID is a stable handle into a Gui's panel arena. Zero is never a
// valid panel.
type PanelID uint64

// Gui is the context object that owns the panel arena, the root ("world")
// panel, input state and the style provider. Every entry point goes
// through a Gui; there is no process-wide state.
//
// A Gui is not safe for concurrent use. It is driven from one goroutine.
type Gui struct {
	panels map[PanelID]*Panel
	nextID PanelID
	root   *Panel

	style         Style
	log           zerolog.Logger
	maxIterations int

	// Input state
	hover        *Panel
	focus        *Panel
	focusRequest PanelID
	pressTarget  map[MouseButton]PanelID
	pointer      Point
}

// New creates a Gui with an empty root panel that accepts mouse input.
func New(opts ...GuiOption) (*Gui, error) {
	g := &Gui{
		panels:        make(map[PanelID]*Panel),
		style:         BaseStyle{},
		log:           debug.Logger(),
		maxIterations: DefaultMaxLayoutIterations,
		pressTarget:   make(map[MouseButton]PanelID),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.log = g.log.With().Str("component", "gui").Logger()

	g.root = g.alloc("world")
	g.root.acceptMouse = true
	g.hover = g.root
	return g, nil
}

// Root returns the root panel.
func (g *Gui) Root() *Panel {
	return g.root
}

// Style returns the style provider.
func (g *Gui) Style() Style {
	return g.style
}

// Logger returns the Gui's logger.
func (g *Gui) Logger() zerolog.Logger {
	return g.log
}

// Hover returns the panel most recently resolved under the pointer.
func (g *Gui) Hover() *Panel {
	return g.hover
}

// Focus returns the focused panel, or nil if none.
func (g *Gui) Focus() *Panel {
	return g.focus
}

// Panel resolves a handle. Returns nil if the panel was freed.
func (g *Gui) Panel(id PanelID) *Panel {
	return g.panels[id]
}

// Len returns the number of live panels in the arena, including queued ones.
func (g *Gui) Len() int {
	return len(g.panels)
}

// Create allocates a panel, queues it for attachment at the root and runs
// the style provider's Setup. The returned handle is usable immediately;
// the panel joins the tree at the next Update.
func (g *Gui) Create(opts ...Option) *Panel {
	p := g.alloc("panel")
	for _, opt := range opts {
		opt(p)
	}

	p.parent = g.root.id
	g.root.enqueueChild(p)
	p.RequestLayout()

	g.style.Setup(p)
	p.setupDirty = false

	g.log.Debug().Uint64("panel", uint64(p.id)).Str("kind", p.kind).Msg("created")
	return p
}

func (g *Gui) alloc(kind string) *Panel {
	g.nextID++
	p := &Panel{
		gui:         g,
		id:          g.nextID,
		kind:        kind,
		setupDirty:  true,
		layoutDirty: true,
		renderDirty: true,
	}
	g.panels[p.id] = p
	return p
}

// free drops p and every descendant from the arena, including panels still
// waiting in their queues.
func (g *Gui) free(p *Panel) {
	stack := []*Panel{p}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if q.freed {
			continue
		}

		for _, id := range q.children {
			if c := g.panels[id]; c != nil {
				stack = append(stack, c)
			}
		}
		// A queued child that is still live elsewhere only loses its
		// pending move; a never-attached one goes with its intended parent.
		for _, id := range q.childQueue {
			c := g.panels[id]
			if c == nil || c.queuedAt != q.id {
				continue
			}
			c.queuedAt = 0
			if !c.attached() {
				stack = append(stack, c)
			}
		}

		delete(g.panels, q.id)
		q.freed = true
		g.forget(q)
	}
}

// forget clears input state that refers to a freed panel.
func (g *Gui) forget(p *Panel) {
	if g.hover == p {
		g.hover = g.root
	}
	if g.focus == p {
		g.focus = nil
	}
	if g.focusRequest == p.id {
		g.focusRequest = 0
	}
	for button, id := range g.pressTarget {
		if id == p.id {
			delete(g.pressTarget, button)
		}
	}
}
