package mapdata

import "wasteland/pkg/engine/debug"

// ExamineAction names what happens when a character examines a tile.
// The set is closed; behaviors are implemented in package iexamine.
type ExamineAction uint8

// Examine actions
const (
	ExamineNone ExamineAction = iota
	ExamineRubble
	ExaminePit
	ExaminePitCovered
	ExamineCardreader
	ExamineVending
	ExamineWaterSource
	ExamineHarvestTer
	ExamineHarvestFurn
	ExamineSign
	ExamineCurtains
	ExamineLockedObject
	ExamineFswitch
	ExamineDoorPeephole
	ExamineGaspump
	ExamineToilet
	ExaminePedestalWyrm
	ExaminePedestalTemple
	NumExamineActions
)

var examineNames = [NumExamineActions]string{
	ExamineNone:           "none",
	ExamineRubble:         "rubble",
	ExaminePit:            "pit",
	ExaminePitCovered:     "pit_covered",
	ExamineCardreader:     "cardreader",
	ExamineVending:        "vending",
	ExamineWaterSource:    "water_source",
	ExamineHarvestTer:     "harvest_ter",
	ExamineHarvestFurn:    "harvest_furn",
	ExamineSign:           "sign",
	ExamineCurtains:       "curtains",
	ExamineLockedObject:   "locked_object",
	ExamineFswitch:        "fswitch",
	ExamineDoorPeephole:   "door_peephole",
	ExamineGaspump:        "gaspump",
	ExamineToilet:         "toilet",
	ExaminePedestalWyrm:   "pedestal_wyrm",
	ExaminePedestalTemple: "pedestal_temple",
}

// ExamineFromName returns the action with the given data name
func ExamineFromName(name string) (ExamineAction, bool) {
	if name == "" {
		return ExamineNone, true
	}
	for i, n := range examineNames {
		if n == name {
			return ExamineAction(i), true
		}
	}
	return ExamineNone, false
}

func examineFromName(name, src, id string) ExamineAction {
	a, ok := ExamineFromName(name)
	if !ok {
		debug.Msg("%s: %s has unknown examine_action %q, using none", src, id, name)
	}
	return a
}

// String returns the data name of the action
func (a ExamineAction) String() string {
	if a >= NumExamineActions {
		return examineNames[ExamineNone]
	}
	return examineNames[a]
}
