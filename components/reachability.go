package components

import "github.com/zyedidia/generic/mapset"

// TilePos is a tile coordinate
type TilePos struct {
	X, Z int
}

// Reachable returns every grass tile reachable from (tilex, tilez) by 4-connected
// steps over grass. The set is empty when the start tile is not grass.
func (g *Grid) Reachable(tilex, tilez int) mapset.Set[TilePos] {
	visited := mapset.New[TilePos]()
	if !g.InBounds(tilex, tilez) || g.TileAt(tilex, tilez) != TileGrass {
		return visited
	}

	// BFS flood fill
	queue := []TilePos{{tilex, tilez}}
	visited.Put(queue[0])

	dirs := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, dir := range dirs {
			next := TilePos{curr.X + dir[0], curr.Z + dir[1]}
			if !g.InBounds(next.X, next.Z) || visited.Has(next) {
				continue
			}
			if g.TileAt(next.X, next.Z) == TileGrass {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}

	return visited
}
