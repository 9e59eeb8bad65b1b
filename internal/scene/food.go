package scene

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Food returns a copy of the food cells in spawn order.
func (sc *Scene) Food() []core.Point {
	food := make([]core.Point, len(sc.food))
	copy(food, sc.food)
	return food
}

// HasFood reports whether p holds a food item.
func (sc *Scene) HasFood(p core.Point) bool {
	return sc.onFood[p]
}

// SpawnFood places one food item on a uniformly chosen interior cell that is
// neither under the snake nor already food. It returns false, leaving the
// scene unchanged, when no such cell exists.
func (sc *Scene) SpawnFood(s *snake.Snake) bool {
	occupied := make(map[core.Point]bool, s.Len())
	for _, seg := range s.Body() {
		occupied[seg] = true
	}

	// Collect all free cells
	in := sc.Interior()
	candidates := make([]core.Point, 0, in.Area())
	for y := in.Y; y < in.Bottom(); y++ {
		for x := in.X; x < in.Right(); x++ {
			p := core.Point{X: x, Y: y}
			if !occupied[p] && !sc.onFood[p] {
				candidates = append(candidates, p)
			}
		}
	}

	if len(candidates) == 0 {
		return false
	}

	p := candidates[sc.rng.Intn(len(candidates))]
	sc.food = append(sc.food, p)
	sc.onFood[p] = true
	return true
}

// TryConsumeFood removes the food under the head and reports whether there was any.
func (sc *Scene) TryConsumeFood(s *snake.Snake) bool {
	head := s.Head()
	if !sc.onFood[head] {
		return false
	}

	delete(sc.onFood, head)
	for i, p := range sc.food {
		if p == head {
			sc.food = append(sc.food[:i], sc.food[i+1:]...)
			break
		}
	}
	return true
}

// PlaceFood puts a food item on p directly, skipping placement rules.
// Used to set up scenarios; returns false if p already holds food.
func (sc *Scene) PlaceFood(p core.Point) bool {
	if sc.onFood[p] {
		return false
	}
	sc.food = append(sc.food, p)
	sc.onFood[p] = true
	return true
}
