package main

type GameSummary struct {
	SessionID                string   `json:"session_id" jsonschema:"Identifier of the game session"`
	RoomName                 string   `json:"room_name" jsonschema:"Current room name"`
	RoomItems                []string `json:"room_items" jsonschema:"Names of the items lying in the current room"`
	Exits                    []string `json:"exits" jsonschema:"Directions leading out of the current room"`
	Inventory                []string `json:"inventory" jsonschema:"Names of the carried items, oldest first"`
	Capacity                 int      `json:"capacity" jsonschema:"How many items the player can carry"`
	IsPlaying                bool     `json:"is_playing" jsonschema:"Whether the game is still active"`
	AwaitingQuitConfirmation bool     `json:"awaiting_quit_confirmation" jsonschema:"Whether the next command answers the quit prompt"`
}

func SummarizeGame(g *Game) GameSummary {
	summary := GameSummary{
		SessionID:                g.ID.String(),
		Inventory:                g.Inventory.Names(),
		Capacity:                 g.Inventory.Capacity(),
		IsPlaying:                g.IsPlaying(),
		AwaitingQuitConfirmation: g.AwaitingQuitConfirmation(),
	}
	if g.CurrentRoom != nil {
		summary.RoomName = g.CurrentRoom.Name
		summary.RoomItems = g.CurrentRoom.ItemNames()
		summary.Exits = g.CurrentRoom.Exits()
	}
	return summary
}
