package main

import "strings"

type commandHandler func(g *Game, arg string)

type commandEntry struct {
	verbs   []string
	handler commandHandler
	// takesArg entries receive the rest of the line; the others only match
	// when the verb stands alone.
	takesArg bool
}

var commands = []commandEntry{
	{[]string{"look", "l"}, cmdLook, false},
	{[]string{"inspect", "examine", "x"}, cmdInspect, true},
	{[]string{"take", "get"}, cmdTake, true},
	{[]string{"drop"}, cmdDrop, true},
	{[]string{"inventory", "i", "inv"}, cmdInventory, false},
	{[]string{"help"}, cmdHelp, false},
	{[]string{"quit"}, cmdQuit, false},
}

var directionAliases = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west", "u": "up", "d": "down",
}

func normalizeInput(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

// splitCommand cuts the verb off at the first run of whitespace. The argument
// has its inner whitespace collapsed.
func splitCommand(cmd string) (verb, arg string) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func lookupDirection(verb string) (string, bool) {
	if full, ok := directionAliases[verb]; ok {
		return full, true
	}
	for _, dir := range Directions {
		if verb == dir {
			return dir, true
		}
	}
	return "", false
}

func processCommand(g *Game, input string) {
	verb, arg := splitCommand(input)
	if verb == "" {
		return
	}
	g.log.Debug("command", "verb", verb, "arg", arg, "room", g.CurrentRoom.Name)

	for _, entry := range commands {
		for _, v := range entry.verbs {
			if v != verb {
				continue
			}
			if !entry.takesArg && arg != "" {
				outPrintln(g, "Unknown command.")
				return
			}
			entry.handler(g, arg)
			return
		}
	}

	if dir, ok := lookupDirection(verb); ok && arg == "" {
		move(g, dir)
		return
	}
	outPrintln(g, "Unknown command.")
}

func look(g *Game) {
	g.CurrentRoom.Describe(outWriter(g), g.styles)
}

func cmdLook(g *Game, _ string) {
	look(g)
}

func cmdInspect(g *Game, name string) {
	if name == "" {
		outPrintln(g, "Inspect what?")
		return
	}
	it := g.CurrentRoom.FindItem(name)
	if it == nil {
		it = g.Inventory.Find(name)
	}
	if it == nil {
		outPrintln(g, "There is no such item here or in your inventory.")
		return
	}
	it.Inspect(outWriter(g), g.styles)
}

func cmdTake(g *Game, name string) {
	if name == "" {
		outPrintln(g, "Take what?")
		return
	}
	if g.Inventory.Full() {
		outPrintln(g, "Your inventory is full. You can't carry more items.")
		return
	}
	it := g.CurrentRoom.FindItem(name)
	if it == nil {
		outPrintln(g, "There is no such item here.")
		return
	}
	g.CurrentRoom.RemoveItem(it)
	g.Inventory.Add(it)
	outPrintf(g, "You take the %s.\n", it.Name)
}

func cmdDrop(g *Game, name string) {
	if name == "" {
		outPrintln(g, "Drop what?")
		return
	}
	it := g.Inventory.Find(name)
	if it == nil {
		outPrintln(g, "You don't have that item.")
		return
	}
	g.Inventory.Remove(it)
	g.CurrentRoom.AddItem(it)
	outPrintf(g, "You drop the %s.\n", it.Name)
}

func cmdInventory(g *Game, _ string) {
	if g.Inventory.Len() == 0 {
		outPrintln(g, "You are not carrying anything.")
		return
	}
	outPrintln(g, "You are carrying:")
	for _, name := range g.Inventory.Names() {
		outPrintf(g, "- %s\n", name)
	}
}

func cmdHelp(g *Game, _ string) {
	outPrintln(g, "Available commands:")
	outPrintln(g, "  look                     - Describe the room again")
	outPrintln(g, "  inspect <item>           - Read an item's description")
	outPrintln(g, "  take <item>              - Pick an item up")
	outPrintln(g, "  drop <item>              - Put a carried item down")
	outPrintln(g, "  inventory                - List what you carry")
	outPrintln(g, "  north, south, east, west - Walk through an exit")
	outPrintln(g, "  up, down                 - Climb")
	outPrintln(g, "  quit                     - Leave the game")
	outPrintln(g)
	outPrintln(g, "Extra shortcuts, beyond the classic command set:")
	outPrintln(g, "  l = look, i/inv = inventory, x/examine = inspect, get = take")
	outPrintln(g, "  n, s, e, w, u, d = the six directions")
	outPrintln(g, "  help = this list")
}

func cmdQuit(g *Game, _ string) {
	g.requestQuit()
}

func move(g *Game, direction string) {
	to, ok := g.CurrentRoom.Exit(direction)
	if !ok {
		outPrintln(g, "You can't go that way.")
		return
	}
	g.log.Info("moved", "from", g.CurrentRoom.Name, "to", to.Name, "direction", direction)
	g.CurrentRoom = to
	outPrintf(g, "You move %s.\n", direction)
	look(g)
}
