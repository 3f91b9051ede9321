package building

import "github.com/1siamBot/tribal-sim/engine/worldtypes"

// UnitEntry describes one trainable unit class: its base cost, train
// time in ticks, and base combat stats before civ multipliers.
type UnitEntry struct {
	WoodCost, FoodCost, GoldCost int
	TrainTime                    int
	BaseMaxHP                    int
	BaseAttack                   int
}

// UnitCatalog gives the production-queue cost/stat table for each
// trainable unit class. Villager and King are not trained through a
// building's queue (Villager is the respawn default; King is placed by
// the map generator), so they are absent here.
var UnitCatalog = map[worldtypes.UnitClass]UnitEntry{
	worldtypes.ClassScout:        {FoodCost: 80, GoldCost: 0, TrainTime: 30, BaseMaxHP: 45, BaseAttack: 3},
	worldtypes.ClassArcher:       {WoodCost: 25, GoldCost: 45, TrainTime: 35, BaseMaxHP: 30, BaseAttack: 4},
	worldtypes.ClassManAtArms:    {FoodCost: 60, GoldCost: 20, TrainTime: 21, BaseMaxHP: 45, BaseAttack: 6},
	worldtypes.ClassKnight:       {FoodCost: 60, GoldCost: 75, TrainTime: 30, BaseMaxHP: 100, BaseAttack: 10},
	worldtypes.ClassMonk:         {GoldCost: 100, FoodCost: 0, TrainTime: 36, BaseMaxHP: 30, BaseAttack: 0},
	worldtypes.ClassBatteringRam: {WoodCost: 160, TrainTime: 50, BaseMaxHP: 175, BaseAttack: 2},
	worldtypes.ClassMangonel:     {WoodCost: 135, GoldCost: 40, TrainTime: 46, BaseMaxHP: 60, BaseAttack: 40},
	worldtypes.ClassTrebuchet:    {WoodCost: 200, GoldCost: 25, TrainTime: 50, BaseMaxHP: 140, BaseAttack: 100},
	worldtypes.ClassBoat:         {WoodCost: 100, TrainTime: 30, BaseMaxHP: 50, BaseAttack: 3},
	worldtypes.ClassTradeCog:     {WoodCost: 100, GoldCost: 50, TrainTime: 36, BaseMaxHP: 80, BaseAttack: 0},
	worldtypes.ClassGoblin:       {FoodCost: 50, TrainTime: 20, BaseMaxHP: 35, BaseAttack: 5},
}

// ProducibleUnits maps a production building's kind to the unit classes
// its queue can train, in the order a QueueUnit action's arg selects
// them. Buildings absent from this table (or placed by the map
// generator, like TownCenter) train nothing through the queue.
var ProducibleUnits = map[worldtypes.ThingKind][]worldtypes.UnitClass{
	worldtypes.KindBarracks:      {worldtypes.ClassManAtArms, worldtypes.ClassGoblin},
	worldtypes.KindArcheryRange:  {worldtypes.ClassArcher},
	worldtypes.KindStable:        {worldtypes.ClassScout, worldtypes.ClassKnight},
	worldtypes.KindSiegeWorkshop: {worldtypes.ClassBatteringRam, worldtypes.ClassMangonel, worldtypes.ClassTrebuchet},
	worldtypes.KindMonastery:     {worldtypes.ClassMonk},
	worldtypes.KindDock:          {worldtypes.ClassBoat, worldtypes.ClassTradeCog},
}

// UnitClassForQueueArg resolves a QueueUnit action's arg (an index into
// buildingKind's ProducibleUnits list) to the UnitClass it selects;
// false if buildingKind trains nothing or arg is out of range.
func UnitClassForQueueArg(buildingKind worldtypes.ThingKind, arg int) (worldtypes.UnitClass, bool) {
	classes, ok := ProducibleUnits[buildingKind]
	if !ok || arg < 0 || arg >= len(classes) {
		return 0, false
	}
	return classes[arg], true
}
