package modeset

import "fmt"

// Stage is a state of a mode change. Stages are entered strictly in order.
type Stage uint8

const (
	Idle Stage = iota
	Blanked
	WritingMisc
	WritingSequencer
	WritingGraphics
	WritingAttribute
	WritingCRT
	Unblanked
)

var stageNames = [...]string{
	Idle:             "idle",
	Blanked:          "blanked",
	WritingMisc:      "writing MISC",
	WritingSequencer: "writing sequencer",
	WritingGraphics:  "writing graphics",
	WritingAttribute: "writing attribute",
	WritingCRT:       "writing CRT",
	Unblanked:        "unblanked",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}
