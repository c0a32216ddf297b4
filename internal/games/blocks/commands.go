package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// Commands is the batch of intents sampled once per tick.
// Left, Right, Down and Rotate are level-triggered; the rest are edges the
// caller clears after the tick.
type Commands struct {
	Left     bool
	Right    bool
	Down     bool
	Rotate   bool
	HardDrop bool
	Hold     bool
	Pause    bool
	Start    bool
	Restart  bool
}

func (c Commands) motion() Motion {
	return Motion{Left: c.Left, Right: c.Right, Down: c.Down, Rotate: c.Rotate}
}

// CommandsFromInput translates platform actions.
func CommandsFromInput(in core.InputFrame) Commands {
	return Commands{
		Left:     in.Has(core.ActionLeft),
		Right:    in.Has(core.ActionRight),
		Down:     in.Has(core.ActionDown),
		Rotate:   in.Has(core.ActionRotate),
		HardDrop: in.Has(core.ActionHardDrop),
		Hold:     in.Has(core.ActionHold),
		Pause:    in.Has(core.ActionPause),
		Start:    in.Has(core.ActionConfirm),
		Restart:  in.Has(core.ActionRestart),
	}
}
