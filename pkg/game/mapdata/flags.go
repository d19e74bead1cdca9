package mapdata

import "wasteland/pkg/engine/bitset"

// TerFurnFlag is a built-in terrain/furniture flag with a fast bit-indexed test.
type TerFurnFlag uint16

// Built-in flags. Data names are the upper-case snake forms listed in flagNames.
const (
	FlagTransparent TerFurnFlag = iota
	FlagFlammable
	FlagReduceScent
	FlagSwimmable
	FlagSupportsRoof
	FlagMineable
	FlagNoitem
	FlagNoSight
	FlagNoScent
	FlagSealed
	FlagAllowFieldEffect
	FlagLiquid
	FlagCollapses
	FlagFlammableAsh
	FlagDestroyItem
	FlagIndoors
	FlagLiquidcont
	FlagFireContainer
	FlagFlammableHard
	FlagSuppressSmoke
	FlagSharp
	FlagDiggable
	FlagRough
	FlagUnstable
	FlagWall
	FlagDeepWater
	FlagShallowWater
	FlagCurrent
	FlagHarvested
	FlagPermeable
	FlagAutoWallSymbol
	FlagConnectWithWall
	FlagClimbable
	FlagGoesDown
	FlagGoesUp
	FlagNoFloor
	FlagSeenFromAbove
	FlagRampDown
	FlagRampUp
	FlagRamp
	FlagRampEnd
	FlagHidePlace
	FlagBlockWind
	FlagFlat
	FlagRail
	FlagThinObstacle
	FlagSmallPassage
	FlagZTransparent
	FlagSunRoofAbove
	FlagFungus
	FlagLocked
	FlagPickable
	FlagWindow
	FlagDoor
	FlagShrub
	FlagYoung
	FlagPlant
	FlagFishable
	FlagTree
	FlagPlowable
	FlagOrganic
	FlagConsole
	FlagPlantable
	FlagGrowthHarvest
	FlagGrowthSeedling
	FlagGrowthMature
	FlagMountable
	FlagFlower
	FlagCanSit
	FlagFlatSurf
	FlagButcherEq
	FlagWorkoutLegs
	FlagWorkoutArms
	FlagTranslocator
	FlagAutodoc
	FlagAutodocCouch
	FlagOpencloseInside
	FlagSaltWater
	FlagPlaceItem
	FlagBarricadableWindow
	FlagBarricadableDoor
	FlagBarricadableDoorDamaged
	FlagBarricadableDoorReinforced
	FlagUsableFire
	FlagContainer
	FlagNoPickupOnExamine
	FlagRug
	FlagDifficultZ
	FlagAlignWorkbench
	FlagNoSpoil
	FlagEasyDeconstruct
	FlagLadder
	FlagAlarmed
	FlagChocolate
	FlagSign
	FlagSignAlways
	FlagDontRemoveRotten
	FlagBlocksdoor
	FlagSmallHide
	FlagNoSelfConnect
	FlagBurrowable
	FlagMurky
	FlagElevator
	FlagBashable
	FlagPainful
	FlagDeconstruct
	FlagNocollide
	FlagPermeableGas
	FlagNoFloorWater
	FlagGrazable
	FlagBrowsable
	FlagThinIce
	FlagWaterCube
	FlagDisplayField
	FlagTiny
	FlagShort
	FlagNanofabTable
	FlagEmitter
	FlagReduceScentStrong
	FlagFireProof
	FlagBridge
	numFlags
)

// Flags must fit in a bitset.
var _ = [bitset.Capacity - int(numFlags)]struct{}{}

var flagNames = [numFlags]string{
	FlagTransparent:                "TRANSPARENT",
	FlagFlammable:                  "FLAMMABLE",
	FlagReduceScent:                "REDUCE_SCENT",
	FlagSwimmable:                  "SWIMMABLE",
	FlagSupportsRoof:               "SUPPORTS_ROOF",
	FlagMineable:                   "MINEABLE",
	FlagNoitem:                     "NOITEM",
	FlagNoSight:                    "NO_SIGHT",
	FlagNoScent:                    "NO_SCENT",
	FlagSealed:                     "SEALED",
	FlagAllowFieldEffect:           "ALLOW_FIELD_EFFECT",
	FlagLiquid:                     "LIQUID",
	FlagCollapses:                  "COLLAPSES",
	FlagFlammableAsh:               "FLAMMABLE_ASH",
	FlagDestroyItem:                "DESTROY_ITEM",
	FlagIndoors:                    "INDOORS",
	FlagLiquidcont:                 "LIQUIDCONT",
	FlagFireContainer:              "FIRE_CONTAINER",
	FlagFlammableHard:              "FLAMMABLE_HARD",
	FlagSuppressSmoke:              "SUPPRESS_SMOKE",
	FlagSharp:                      "SHARP",
	FlagDiggable:                   "DIGGABLE",
	FlagRough:                      "ROUGH",
	FlagUnstable:                   "UNSTABLE",
	FlagWall:                       "WALL",
	FlagDeepWater:                  "DEEP_WATER",
	FlagShallowWater:               "SHALLOW_WATER",
	FlagCurrent:                    "CURRENT",
	FlagHarvested:                  "HARVESTED",
	FlagPermeable:                  "PERMEABLE",
	FlagAutoWallSymbol:             "AUTO_WALL_SYMBOL",
	FlagConnectWithWall:            "CONNECT_WITH_WALL",
	FlagClimbable:                  "CLIMBABLE",
	FlagGoesDown:                   "GOES_DOWN",
	FlagGoesUp:                     "GOES_UP",
	FlagNoFloor:                    "NO_FLOOR",
	FlagSeenFromAbove:              "SEEN_FROM_ABOVE",
	FlagRampDown:                   "RAMP_DOWN",
	FlagRampUp:                     "RAMP_UP",
	FlagRamp:                       "RAMP",
	FlagRampEnd:                    "RAMP_END",
	FlagHidePlace:                  "HIDE_PLACE",
	FlagBlockWind:                  "BLOCK_WIND",
	FlagFlat:                       "FLAT",
	FlagRail:                       "RAIL",
	FlagThinObstacle:               "THIN_OBSTACLE",
	FlagSmallPassage:               "SMALL_PASSAGE",
	FlagZTransparent:               "Z_TRANSPARENT",
	FlagSunRoofAbove:               "SUN_ROOF_ABOVE",
	FlagFungus:                     "FUNGUS",
	FlagLocked:                     "LOCKED",
	FlagPickable:                   "PICKABLE",
	FlagWindow:                     "WINDOW",
	FlagDoor:                       "DOOR",
	FlagShrub:                      "SHRUB",
	FlagYoung:                      "YOUNG",
	FlagPlant:                      "PLANT",
	FlagFishable:                   "FISHABLE",
	FlagTree:                       "TREE",
	FlagPlowable:                   "PLOWABLE",
	FlagOrganic:                    "ORGANIC",
	FlagConsole:                    "CONSOLE",
	FlagPlantable:                  "PLANTABLE",
	FlagGrowthHarvest:              "GROWTH_HARVEST",
	FlagGrowthSeedling:             "GROWTH_SEEDLING",
	FlagGrowthMature:               "GROWTH_MATURE",
	FlagMountable:                  "MOUNTABLE",
	FlagFlower:                     "FLOWER",
	FlagCanSit:                     "CAN_SIT",
	FlagFlatSurf:                   "FLAT_SURF",
	FlagButcherEq:                  "BUTCHER_EQ",
	FlagWorkoutLegs:                "WORKOUT_LEGS",
	FlagWorkoutArms:                "WORKOUT_ARMS",
	FlagTranslocator:               "TRANSLOCATOR",
	FlagAutodoc:                    "AUTODOC",
	FlagAutodocCouch:               "AUTODOC_COUCH",
	FlagOpencloseInside:            "OPENCLOSE_INSIDE",
	FlagSaltWater:                  "SALT_WATER",
	FlagPlaceItem:                  "PLACE_ITEM",
	FlagBarricadableWindow:         "BARRICADABLE_WINDOW",
	FlagBarricadableDoor:           "BARRICADABLE_DOOR",
	FlagBarricadableDoorDamaged:    "BARRICADABLE_DOOR_DAMAGED",
	FlagBarricadableDoorReinforced: "BARRICADABLE_DOOR_REINFORCED",
	FlagUsableFire:                 "USABLE_FIRE",
	FlagContainer:                  "CONTAINER",
	FlagNoPickupOnExamine:          "NO_PICKUP_ON_EXAMINE",
	FlagRug:                        "RUG",
	FlagDifficultZ:                 "DIFFICULT_Z",
	FlagAlignWorkbench:             "ALIGN_WORKBENCH",
	FlagNoSpoil:                    "NO_SPOIL",
	FlagEasyDeconstruct:            "EASY_DECONSTRUCT",
	FlagLadder:                     "LADDER",
	FlagAlarmed:                    "ALARMED",
	FlagChocolate:                  "CHOCOLATE",
	FlagSign:                       "SIGN",
	FlagSignAlways:                 "SIGN_ALWAYS",
	FlagDontRemoveRotten:           "DONT_REMOVE_ROTTEN",
	FlagBlocksdoor:                 "BLOCKSDOOR",
	FlagSmallHide:                  "SMALL_HIDE",
	FlagNoSelfConnect:              "NO_SELF_CONNECT",
	FlagBurrowable:                 "BURROWABLE",
	FlagMurky:                      "MURKY",
	FlagElevator:                   "ELEVATOR",
	FlagBashable:                   "BASHABLE",
	FlagPainful:                    "PAINFUL",
	FlagDeconstruct:                "DECONSTRUCT",
	FlagNocollide:                  "NOCOLLIDE",
	FlagPermeableGas:               "PERMEABLE_GAS",
	FlagNoFloorWater:               "NO_FLOOR_WATER",
	FlagGrazable:                   "GRAZABLE",
	FlagBrowsable:                  "BROWSABLE",
	FlagThinIce:                    "THIN_ICE",
	FlagWaterCube:                  "WATER_CUBE",
	FlagDisplayField:               "DISPLAY_FIELD",
	FlagTiny:                       "TINY",
	FlagShort:                      "SHORT",
	FlagNanofabTable:               "NANOFAB_TABLE",
	FlagEmitter:                    "EMITTER",
	FlagReduceScentStrong:          "REDUCE_SCENT_STRONG",
	FlagFireProof:                  "FIRE_PROOF",
	FlagBridge:                     "BRIDGE",
}

var flagsByName = func() map[string]TerFurnFlag {
	m := make(map[string]TerFurnFlag, numFlags)
	for i, name := range flagNames {
		m[name] = TerFurnFlag(i)
	}
	return m
}()

// FlagFromName returns the built-in flag with the given data name.
func FlagFromName(name string) (TerFurnFlag, bool) {
	f, ok := flagsByName[name]
	return f, ok
}

// String returns the data name of the flag
func (f TerFurnFlag) String() string {
	if f >= numFlags {
		return "UNKNOWN_FLAG"
	}
	return flagNames[f]
}

// AllFlags returns every built-in flag in enum order
func AllFlags() []TerFurnFlag {
	out := make([]TerFurnFlag, numFlags)
	for i := range out {
		out[i] = TerFurnFlag(i)
	}
	return out
}

// FlagSet is the bit-indexed set of built-in flags
type FlagSet = bitset.Set[TerFurnFlag]
