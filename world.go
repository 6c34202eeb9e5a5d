package main

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/ini.v1"
)

//go:embed world.ini
var defaultWorld []byte

type World struct {
	Rooms  []*Room
	byName map[string]*Room
}

// NewWorld builds the manor from the embedded world data.
func NewWorld() *World {
	w, err := LoadWorld(defaultWorld)
	if err != nil {
		panic(fmt.Sprintf("embedded world: %v", err))
	}
	return w
}

// LoadWorld parses world data in INI form. Rooms are numbered Room1, Room2, ...
// and items Item1, Item2, ...; numbering stops at the first gap.
func LoadWorld(data []byte) (*World, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return nil, fmt.Errorf("parse world: %w", err)
	}

	w := &World{byName: make(map[string]*Room)}
	registry := make(map[int]*Room)

	// First pass: create rooms
	for i := 1; cfg.HasSection(roomSection(i)); i++ {
		sec := cfg.Section(roomSection(i))
		name := sec.Key("Name").String()
		if name == "" {
			return nil, fmt.Errorf("%s: missing name", roomSection(i))
		}
		key := foldName(name)
		if _, dup := w.byName[key]; dup {
			return nil, fmt.Errorf("%s: duplicate room name %q", roomSection(i), name)
		}
		r := NewRoom(i, name, sec.Key("Description").String())
		registry[i] = r
		w.byName[key] = r
		w.Rooms = append(w.Rooms, r)
	}
	if len(w.Rooms) == 0 {
		return nil, errors.New("world has no rooms")
	}

	// Second pass: link exits
	for _, r := range w.Rooms {
		sec := cfg.Section(roomSection(r.ID))
		for _, dir := range Directions {
			key := exitKey(dir)
			if !sec.HasKey(key) {
				continue
			}
			target := sec.Key(key).MustInt(0)
			to, ok := registry[target]
			if !ok {
				return nil, fmt.Errorf("%s: %s exit to unknown room %d", roomSection(r.ID), dir, target)
			}
			r.Connect(dir, to)
		}
	}

	// Items go into their rooms in file order
	for i := 1; cfg.HasSection(itemSection(i)); i++ {
		sec := cfg.Section(itemSection(i))
		loc := sec.Key("Location").MustInt(0)
		r, ok := registry[loc]
		if !ok {
			return nil, fmt.Errorf("%s: unknown location %d", itemSection(i), loc)
		}
		r.AddItem(NewItem(sec.Key("Name").String(), sec.Key("Description").String()))
	}

	return w, nil
}

// Start is the room every session begins in.
func (w *World) Start() *Room {
	return w.Rooms[0]
}

func (w *World) Room(name string) *Room {
	return w.byName[foldName(name)]
}

// ItemCount counts the items lying in rooms.
func (w *World) ItemCount() int {
	n := 0
	for _, r := range w.Rooms {
		n += len(r.Items)
	}
	return n
}

func roomSection(i int) string { return fmt.Sprintf("Room%d", i) }
func itemSection(i int) string { return fmt.Sprintf("Item%d", i) }

// exitKey maps "north" to the INI key "North".
func exitKey(dir string) string {
	return string(dir[0]-'a'+'A') + dir[1:]
}
