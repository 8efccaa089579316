// Package ui holds the menu entities and the pointer interaction that
// drives them. It knows nothing about rendering; the game package draws
// whatever nodes the World contains.
package ui

import (
	"image"
	"image/color"

	"github.com/google/uuid"
)

// Node is one UI entity: a panel, a button or a text label.
type Node struct {
	ID       uuid.UUID
	Parent   uuid.UUID // uuid.Nil for roots
	Children []uuid.UUID

	Rect       image.Rectangle
	Background color.RGBA
	Label      string
	TextColor  color.RGBA

	// Button is non-nil for interactive nodes.
	Button *Button
}

// World is an ordered registry of UI nodes. Nodes are kept in spawn order
// so parents always precede their children when drawn.
type World struct {
	nodes map[uuid.UUID]*Node
	order []uuid.UUID
	menus map[uuid.UUID]struct{}
	focus uuid.UUID

	// leftHeld is the left button state seen by the last Interact. It
	// starts true, and is set again whenever a menu spawns, so a button
	// already held down must be released before it can press anything.
	leftHeld bool
}

// NewWorld returns an empty registry.
func NewWorld() *World {
	return &World{
		nodes:    make(map[uuid.UUID]*Node),
		menus:    make(map[uuid.UUID]struct{}),
		leftHeld: true,
	}
}

// Spawn registers n under parent (uuid.Nil for a root) and returns its id.
func (w *World) Spawn(parent uuid.UUID, n Node) uuid.UUID {
	n.ID = uuid.New()
	n.Parent = parent
	n.Children = nil
	if p, ok := w.nodes[parent]; ok {
		p.Children = append(p.Children, n.ID)
	}
	w.nodes[n.ID] = &n
	w.order = append(w.order, n.ID)
	return n.ID
}

// Get returns the node with the given id.
func (w *World) Get(id uuid.UUID) (*Node, bool) {
	n, ok := w.nodes[id]
	return n, ok
}

// Len returns the number of live nodes.
func (w *World) Len() int { return len(w.nodes) }

// Each calls fn for every node in spawn order.
func (w *World) Each(fn func(*Node)) {
	for _, id := range w.order {
		fn(w.nodes[id])
	}
}

// Despawn removes id and all its descendants. Unknown ids are ignored.
func (w *World) Despawn(id uuid.UUID) {
	n, ok := w.nodes[id]
	if !ok {
		return
	}
	doomed := make(map[uuid.UUID]struct{})
	w.collect(n, doomed)

	if p, ok := w.nodes[n.Parent]; ok {
		kept := p.Children[:0]
		for _, c := range p.Children {
			if c != id {
				kept = append(kept, c)
			}
		}
		p.Children = kept
	}

	order := w.order[:0]
	for _, oid := range w.order {
		if _, gone := doomed[oid]; gone {
			delete(w.nodes, oid)
			delete(w.menus, oid)
			continue
		}
		order = append(order, oid)
	}
	w.order = order
	if _, gone := doomed[w.focus]; gone {
		w.focus = uuid.Nil
	}
}

func (w *World) collect(n *Node, into map[uuid.UUID]struct{}) {
	into[n.ID] = struct{}{}
	for _, c := range n.Children {
		if child, ok := w.nodes[c]; ok {
			w.collect(child, into)
		}
	}
}

// Focus returns the node that last received pointer focus, or uuid.Nil.
func (w *World) Focus() uuid.UUID { return w.focus }

// MenuCount returns the number of live menu roots.
func (w *World) MenuCount() int { return len(w.menus) }

// DespawnMenus removes every menu subtree.
func (w *World) DespawnMenus() {
	roots := make([]uuid.UUID, 0, len(w.menus))
	for id := range w.menus {
		roots = append(roots, id)
	}
	for _, id := range roots {
		w.Despawn(id)
	}
}
