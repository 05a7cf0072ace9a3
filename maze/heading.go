package maze

// absoluteTable[facing][travel] is the compass direction reached by moving
// in the relative direction travel while facing facing.
var absoluteTable = [4][4]Direction{
	North: {Forward: North, Right: East, Backward: South, Left: West},
	East:  {Forward: East, Right: South, Backward: West, Left: North},
	South: {Forward: South, Right: West, Backward: North, Left: East},
	West:  {Forward: West, Right: North, Backward: East, Left: South},
}

// relativeTable[facing][direction] is the inverse of absoluteTable.
var relativeTable = [4][4]DirectionOfTravel{
	North: {North: Forward, East: Right, South: Backward, West: Left},
	East:  {North: Left, East: Forward, South: Right, West: Backward},
	South: {North: Backward, East: Left, South: Forward, West: Right},
	West:  {North: Right, East: Backward, South: Left, West: Forward},
}

var vectorTable = [4][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

var oppositeTable = [4]Direction{North: South, East: West, South: North, West: East}

// ToAbsolute converts a heading-relative direction into a compass direction.
func ToAbsolute(facing Direction, travel DirectionOfTravel) Direction {
	return absoluteTable[facing][travel]
}

// ToRelative converts a compass direction into one relative to facing.
// ToAbsolute(facing, ToRelative(facing, d)) == d for every facing and d.
func ToRelative(facing, d Direction) DirectionOfTravel {
	return relativeTable[facing][d]
}

// ToVector returns the (dx, dy) coordinate delta of d, where x grows
// eastwards (columns) and y grows southwards (rows).
func ToVector(d Direction) (dx, dy int) {
	v := vectorTable[d]
	return v[0], v[1]
}

// Opposite returns the direction facing back across the same wall.
func Opposite(d Direction) Direction {
	return oppositeTable[d]
}
