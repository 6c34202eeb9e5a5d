package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
)

const (
	InventoryLimit = 10
	MaxHistory     = 10
)

// Directions lists every direction label a player may walk, in the order
// exits are linked and displayed.
var Directions = []string{"north", "south", "east", "west", "up", "down"}

// foldName turns a display name into its lookup key: collapsed whitespace,
// full case folding.
func foldName(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

type Item struct {
	Name        string
	Description string
	key         string
}

func NewItem(name, description string) *Item {
	return &Item{Name: name, Description: description, key: foldName(name)}
}

func (it *Item) Inspect(w io.Writer, st styles) {
	_, _ = fmt.Fprintln(w, st.wrap(it.Description))
}

type Room struct {
	ID          int
	Name        string
	Description string
	Items       []*Item

	exits     map[string]*Room
	exitOrder []string
}

func NewRoom(id int, name, description string) *Room {
	return &Room{
		ID:          id,
		Name:        name,
		Description: description,
		exits:       make(map[string]*Room),
	}
}

// Connect adds a one-way exit. Linking a direction twice keeps its original
// display position.
func (r *Room) Connect(direction string, to *Room) {
	if _, ok := r.exits[direction]; !ok {
		r.exitOrder = append(r.exitOrder, direction)
	}
	r.exits[direction] = to
}

func (r *Room) Exit(direction string) (*Room, bool) {
	to, ok := r.exits[direction]
	return to, ok
}

// Exits returns the exit labels in the order they were linked.
func (r *Room) Exits() []string {
	out := make([]string, len(r.exitOrder))
	copy(out, r.exitOrder)
	return out
}

func (r *Room) AddItem(it *Item) {
	r.Items = append(r.Items, it)
}

func (r *Room) FindItem(name string) *Item {
	return findIn(r.Items, name)
}

// RemoveItem takes it out of the room, keeping the order of the rest.
func (r *Room) RemoveItem(it *Item) bool {
	var ok bool
	r.Items, ok = removeFrom(r.Items, it)
	return ok
}

func (r *Room) ItemNames() []string {
	return namesOf(r.Items)
}

func (r *Room) Describe(w io.Writer, st styles) {
	_, _ = fmt.Fprintln(w, st.wrap(st.title.Render(r.Name)+": "+r.Description))
	if len(r.Items) > 0 {
		_, _ = fmt.Fprintln(w, st.header.Render("You see:"))
		for _, it := range r.Items {
			_, _ = fmt.Fprintf(w, "- %s\n", it.Name)
		}
	}
	if len(r.exitOrder) > 0 {
		_, _ = fmt.Fprintln(w, st.header.Render("Exits:"))
		for _, dir := range r.exitOrder {
			_, _ = fmt.Fprintf(w, "- %s\n", dir)
		}
	}
}

// Inventory is the ordered, bounded set of items the player carries.
type Inventory struct {
	items    []*Item
	capacity int
}

func NewInventory(capacity int) *Inventory {
	return &Inventory{capacity: capacity}
}

func (inv *Inventory) Len() int      { return len(inv.items) }
func (inv *Inventory) Capacity() int { return inv.capacity }
func (inv *Inventory) Full() bool    { return len(inv.items) >= inv.capacity }

func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) Names() []string {
	return namesOf(inv.items)
}

func (inv *Inventory) Find(name string) *Item {
	return findIn(inv.items, name)
}

// Add appends it to the tail. It refuses when the inventory is full.
func (inv *Inventory) Add(it *Item) bool {
	if inv.Full() {
		return false
	}
	inv.items = append(inv.items, it)
	return true
}

func (inv *Inventory) Remove(it *Item) bool {
	var ok bool
	inv.items, ok = removeFrom(inv.items, it)
	return ok
}

func findIn(items []*Item, name string) *Item {
	key := foldName(name)
	for _, it := range items {
		if it.key == key {
			return it
		}
	}
	return nil
}

func removeFrom(items []*Item, target *Item) ([]*Item, bool) {
	for i, it := range items {
		if it == target {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

func namesOf(items []*Item) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
