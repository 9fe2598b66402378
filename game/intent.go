package game

// Intent is a discrete player command. Press intents fire immediately; the
// matching release stops held repetition.
type Intent uint8

const (
	IntentShiftLeft Intent = iota + 1
	IntentShiftLeftRelease
	IntentShiftRight
	IntentShiftRightRelease
	IntentSoftDropStart
	IntentSoftDropStop
	IntentRotate
	IntentRotateRelease
	IntentHardDrop
	IntentTogglePause
	IntentToggleInfo
	IntentToggleMusic
	IntentToggleSound
	IntentMenuUp
	IntentMenuDown
	IntentMenuActivate
	IntentNewGame
	IntentQuit
)

var intentNames = map[Intent]string{
	IntentShiftLeft:         "ShiftLeft",
	IntentShiftLeftRelease:  "ShiftLeftRelease",
	IntentShiftRight:        "ShiftRight",
	IntentShiftRightRelease: "ShiftRightRelease",
	IntentSoftDropStart:     "SoftDropStart",
	IntentSoftDropStop:      "SoftDropStop",
	IntentRotate:            "Rotate",
	IntentRotateRelease:     "RotateRelease",
	IntentHardDrop:          "HardDrop",
	IntentTogglePause:       "TogglePause",
	IntentToggleInfo:        "ToggleInfo",
	IntentToggleMusic:       "ToggleMusic",
	IntentToggleSound:       "ToggleSound",
	IntentMenuUp:            "MenuUp",
	IntentMenuDown:          "MenuDown",
	IntentMenuActivate:      "MenuActivate",
	IntentNewGame:           "NewGame",
	IntentQuit:              "Quit",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "Intent(?)"
}
