package main

import "github.com/Faultbox/donkey/pkg/keys"

// snake is a single cell that steps one tile per key press and stays on the board.
type snake struct {
	x, y int
}

// keyPresser is the slice of the window the snake reads.
type keyPresser interface {
	KeyPressed(keys.Key) bool
}

// step moves the snake for every direction key pressed this frame.
func (s *snake) step(in keyPresser, boardW, boardH, tile int) {
	if in.KeyPressed(keys.W) && s.y > 0 {
		s.y -= tile
	}
	if in.KeyPressed(keys.S) && s.y < boardH-tile {
		s.y += tile
	}
	if in.KeyPressed(keys.A) && s.x > 0 {
		s.x -= tile
	}
	if in.KeyPressed(keys.D) && s.x < boardW-tile {
		s.x += tile
	}
}

// darkTile reports whether the tile at (x, y) is drawn in the checker color.
func darkTile(x, y, tile int) bool {
	return (x+y)/tile%2 == 0
}
