package panel

// State is a lifecycle state of the panel.
type State int

const (
	Off State = iota
	Powering
	Initializing
	SleepingOut
	On
	SleepingIn
)

var stateNames = [...]string{
	Off:          "Off",
	Powering:     "Powering",
	Initializing: "Initializing",
	SleepingOut:  "SleepingOut",
	On:           "On",
	SleepingIn:   "SleepingIn",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}
