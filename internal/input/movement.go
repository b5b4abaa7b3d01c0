package input

// Direction is a camera movement direction.
type Direction uint8

const (
	DirForward Direction = iota
	DirBackward
	DirLeft
	DirRight
	DirUp
	DirDown
	DirectionCount
)

// Movement is a bitmask of held directions.
type Movement uint8

func (m Movement) With(d Direction) Movement {
	return m | 1<<d
}

func (m Movement) Without(d Direction) Movement {
	return m &^ (1 << d)
}

func (m Movement) Has(d Direction) bool {
	return m&(1<<d) != 0
}

func (m Movement) Empty() bool {
	return m == 0
}
