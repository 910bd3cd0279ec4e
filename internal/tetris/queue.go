package tetris

// PieceQueue produces an endless deterministic sequence of shapes using the
// 7-bag system: each run of seven draws contains every shape exactly once,
// in an order shuffled per bag. The queue is a value; Next returns the
// advanced queue instead of mutating, which keeps replays and snapshots
// trivially exact.
type PieceQueue struct {
	state uint64 // LCG state
	bag   [ShapeCount]Shape
	idx   int
}

// NewPieceQueue creates a queue seeded with the given 64-bit value.
// The same seed always yields the same shape sequence.
func NewPieceQueue(seed int64) PieceQueue {
	s := uint64(seed)
	if s == 0 {
		s = 1
	}
	q := PieceQueue{state: s}
	q.bag, q.state = shuffledBag(q.state)
	return q
}

// Peek returns the shape the next call to Next will produce.
func (q PieceQueue) Peek() Shape {
	return q.bag[q.idx]
}

// Next consumes one shape and returns it with the advanced queue.
func (q PieceQueue) Next() (Shape, PieceQueue) {
	shape := q.bag[q.idx]
	q.idx++
	if q.idx == ShapeCount {
		q.bag, q.state = shuffledBag(q.state)
		q.idx = 0
	}
	return shape, q
}

// lcgNext advances a 64-bit linear congruential generator.
func lcgNext(state uint64) uint64 {
	return state*6364136223846793005 + 1442695040888963407
}

// shuffledBag returns a fresh Fisher-Yates shuffled bag of all seven shapes
// and the advanced generator state.
func shuffledBag(state uint64) ([ShapeCount]Shape, uint64) {
	bag := [ShapeCount]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}
	for i := ShapeCount - 1; i > 0; i-- {
		state = lcgNext(state)
		j := int(state % uint64(i+1))
		bag[i], bag[j] = bag[j], bag[i]
	}
	return bag, state
}
