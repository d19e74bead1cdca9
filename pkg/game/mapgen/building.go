package mapgen

import (
	"math/rand"

	"wasteland/pkg/engine/world"
	"wasteland/pkg/game/mapdata"
	"wasteland/pkg/game/submap"
)

// Building terrain and furniture
const (
	WallTer  = "t_wall"
	FloorTer = "t_floor"
	DoorTer  = "t_door_c"
)

// RoomFurniture is placed one piece per room, picked at random
var RoomFurniture = []string{"f_chair", "f_locker", "f_crate_c", "f_toilet"}

// minRoomSize is the smallest room side, walls excluded
const minRoomSize = 3

// bspNode is a rectangle of floor cells that may be split by an interior wall
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
}

type building struct {
	rng  *rand.Rand
	sm   *submap.Submap
	wall mapdata.TerID
	door mapdata.TerID
}

// GenerateBuilding builds a walled building filling the submap at pos. The inside
// is partitioned by binary space partitioning into rooms, with a door in every
// partition wall so that every room can be reached. The result depends only on
// the seed and pos.
func (g *Generator) GenerateBuilding(pos world.Tripoint) *submap.Submap {
	b := &building{
		rng:  rand.New(rand.NewSource(g.submapSeed(pos))),
		sm:   submap.New(mapdata.TerLookup(FloorTer)),
		wall: mapdata.TerLookup(WallTer),
		door: mapdata.TerLookup(DoorTer),
	}

	for i := range submap.SEEX {
		b.sm.SetTer(world.Pt(i, 0), b.wall)
		b.sm.SetTer(world.Pt(i, submap.SEEY-1), b.wall)
	}
	for i := range submap.SEEY {
		b.sm.SetTer(world.Pt(0, i), b.wall)
		b.sm.SetTer(world.Pt(submap.SEEX-1, i), b.wall)
	}
	// Front door
	b.sm.SetTer(world.Pt(1+b.rng.Intn(submap.SEEX-2), submap.SEEY-1), b.door)

	root := &bspNode{x: 1, y: 1, width: submap.SEEX - 2, height: submap.SEEY - 2}
	b.split(root)
	b.furnish(root)
	return b.sm
}

func (b *building) doorAt(p world.Point) bool {
	return b.sm.Ter(p) == b.door
}

// split recursively divides node with a one-cell wall holding one door
func (b *building) split(node *bspNode) {
	canVertical := node.width >= minRoomSize*2+1
	canHorizontal := node.height >= minRoomSize*2+1

	// Decide split direction
	var horizontal bool
	switch {
	case canVertical && canHorizontal:
		horizontal = node.height > node.width || (node.height == node.width && b.rng.Intn(2) == 0)
	case canHorizontal:
		horizontal = true
	case canVertical:
		horizontal = false
	default:
		return
	}

	if horizontal {
		// Wall row s must not cut a door in the side walls
		s, ok := b.pickSplit(node.y, node.height, func(s int) bool {
			return !b.doorAt(world.Pt(node.x-1, s)) && !b.doorAt(world.Pt(node.x+node.width, s))
		})
		if !ok {
			return
		}
		for x := node.x; x < node.x+node.width; x++ {
			b.sm.SetTer(world.Pt(x, s), b.wall)
		}
		d := world.Pt(node.x+b.rng.Intn(node.width), s)
		b.sm.SetTer(d, b.door)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: s - node.y}
		node.right = &bspNode{x: node.x, y: s + 1, width: node.width, height: node.y + node.height - s - 1}
	} else {
		s, ok := b.pickSplit(node.x, node.width, func(s int) bool {
			return !b.doorAt(world.Pt(s, node.y-1)) && !b.doorAt(world.Pt(s, node.y+node.height))
		})
		if !ok {
			return
		}
		for y := node.y; y < node.y+node.height; y++ {
			b.sm.SetTer(world.Pt(s, y), b.wall)
		}
		d := world.Pt(s, node.y+b.rng.Intn(node.height))
		b.sm.SetTer(d, b.door)
		node.left = &bspNode{x: node.x, y: node.y, width: s - node.x, height: node.height}
		node.right = &bspNode{x: s + 1, y: node.y, width: node.x + node.width - s - 1, height: node.height}
	}

	// Recursively split children
	b.split(node.left)
	b.split(node.right)
}

// pickSplit picks a wall line leaving at least minRoomSize cells on each side
func (b *building) pickSplit(start, length int, ok func(s int) bool) (int, bool) {
	lo := start + minRoomSize
	hi := start + length - minRoomSize - 1
	var candidates []int
	for s := lo; s <= hi; s++ {
		if ok(s) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[b.rng.Intn(len(candidates))], true
}

// furnish puts one piece of furniture in a corner of every leaf room
func (b *building) furnish(node *bspNode) {
	if node.left != nil || node.right != nil {
		b.furnish(node.left)
		b.furnish(node.right)
		return
	}
	if len(RoomFurniture) == 0 {
		return
	}
	f := mapdata.FurnLookup(RoomFurniture[b.rng.Intn(len(RoomFurniture))])
	corners := []world.Point{
		world.Pt(node.x, node.y),
		world.Pt(node.x+node.width-1, node.y),
		world.Pt(node.x, node.y+node.height-1),
		world.Pt(node.x+node.width-1, node.y+node.height-1),
	}
	for _, i := range b.rng.Perm(len(corners)) {
		p := corners[i]
		if !b.nextToDoor(p) {
			b.sm.SetFurn(p, f)
			return
		}
	}
}

func (b *building) nextToDoor(p world.Point) bool {
	for _, n := range world.Neighbors(p) {
		if b.sm.InBounds(n) && b.sm.Ter(n) == b.door {
			return true
		}
	}
	return false
}
