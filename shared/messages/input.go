package messages

import "github.com/automoto/beatchain/config"

// FighterInput is one frame of normalized input for one fighter: a numpad
// motion relative to the fighter's facing and the buttons held.
type FighterInput struct {
	CharacterID int           `json:"id"`
	Motion      config.Motion `json:"m"`
	Buttons     config.Button `json:"b"`
}

// NeutralInput is what a fighter sends on a frame with nothing held.
func NeutralInput(id int) FighterInput {
	return FighterInput{CharacterID: id, Motion: config.MotionNeutral}
}
