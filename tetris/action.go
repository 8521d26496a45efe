package tetris

import "fmt"

// Action is a single input a driver can feed to a State.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	RotateCW
	RotateCCW
	SoftDrop
	HardDrop
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case RotateCW:
		return "RotateCW"
	case RotateCCW:
		return "RotateCCW"
	case SoftDrop:
		return "SoftDrop"
	case HardDrop:
		return "HardDrop"
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}
