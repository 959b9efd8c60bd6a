package component

// Mode — режим игры: игра или пауза
type Mode int

const (
	PlayMode Mode = iota
	PauseMode
)

func (m Mode) String() string {
	switch m {
	case PlayMode:
		return "play"
	case PauseMode:
		return "pause"
	default:
		return "unknown"
	}
}
