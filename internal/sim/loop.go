package sim

// FrameOutput is the result of one frame: the new state and what to draw.
type FrameOutput struct {
	State     State `json:"state" yaml:"state"`
	DrawCalls []int `json:"draw_calls" yaml:"draw_calls"`
}

// InitState returns the arena: a 10x10 grid with a player at (1,1), an enemy
// at (2,3) and a pickup at (7,7).
func InitState() State {
	return NewState(mustGrid(ArenaRows), []Entity{
		NewPlayer(NewVector2(1, 1)),
		NewEnemy(NewVector2(2, 3)),
		NewPickup(NewVector2(7, 7)),
	})
}

// InitRoomState returns the 5x5 room with a single player at (1,1).
func InitRoomState() State {
	return NewState(mustGrid(RoomRows), []Entity{
		NewPlayer(NewVector2(1, 1)),
	})
}

// GameLoop advances state by one frame of input and returns the new state
// with its draw calls. The argument is never modified.
func GameLoop(input Vector2, state State) FrameOutput {
	next := state.Clone()
	next.Process(input)
	return FrameOutput{
		DrawCalls: next.Draw(),
		State:     next,
	}
}
