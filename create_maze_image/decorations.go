package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/yalue/image_utils"
	"github.com/yalue/torch_maze"
)

// The direction an arrow points.
type arrowDir int

const (
	arrowUp arrowDir = iota
	arrowRight
	arrowDown
	arrowLeft
)

func getArrow(dir arrowDir, arrowColor color.Color) image.Image {
	switch dir {
	case arrowUp:
		return image_utils.UpArrow(arrowColor)
	case arrowDown:
		return image_utils.DownArrow(arrowColor)
	case arrowLeft:
		return image_utils.LeftArrow(arrowColor)
	}
	return image_utils.RightArrow(arrowColor)
}

// Returns a square arrow image, length pixels across, with a white center so
// it stands out against the maze's colors.
func getOutlinedArrow(dir arrowDir, arrowColor color.Color,
	length int) image.Image {
	outerArrow := image_utils.ResizeImage(getArrow(dir, arrowColor), length,
		length)
	innerArrow := image_utils.ResizeImage(getArrow(dir, color.White),
		length/2, length/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(length/4, length/4))
	return image_utils.ToRGBA(toReturn)
}

// Returns the tile where an arrow pointing at the door is drawn, along with
// the arrow's direction. Prefers the tile above the door, falling back to the
// one below if the door is on the top row.
func doorArrowTile(l *torch_maze.Level) (torch_maze.Cell, arrowDir) {
	door := l.Door
	if door.Y > 0 {
		return torch_maze.Cell{X: door.X, Y: door.Y - 1}, arrowDown
	}
	return torch_maze.Cell{X: door.X, Y: door.Y + 1}, arrowUp
}

// Rasterizes the level at tilePixels pixels per tile, then adds an arrow
// pointing into the start cell from the left border and an arrow pointing at
// the door.
func drawLevelDecorations(l *torch_maze.Level, tilePixels int) (*image.RGBA,
	error) {
	if tilePixels < 4 {
		return nil, fmt.Errorf("Tiles must be at least 4 pixels, got %d",
			tilePixels)
	}
	w := l.Grid.Width() * tilePixels
	h := l.Grid.Height() * tilePixels
	decorated := image_utils.NewCompositeImage()
	levelPic := image_utils.ToRGBA(image_utils.ResizeImage(l, w, h))
	e := decorated.AddImage(levelPic, image.Pt(0, 0))
	if e != nil {
		return nil, fmt.Errorf("Error setting base level image: %w", e)
	}
	greenColor := color.RGBA{40, 180, 70, 255}
	blueColor := color.RGBA{100, 120, 255, 255}

	startArrow := getOutlinedArrow(arrowRight, greenColor, tilePixels)
	startTile := torch_maze.Cell{
		X: torch_maze.StartCell.X - 1,
		Y: torch_maze.StartCell.Y,
	}
	e = decorated.AddImage(startArrow, image.Pt(startTile.X*tilePixels,
		startTile.Y*tilePixels))
	if e != nil {
		return nil, fmt.Errorf("Error adding start arrow: %w", e)
	}

	doorTile, dir := doorArrowTile(l)
	doorArrow := getOutlinedArrow(dir, blueColor, tilePixels)
	e = decorated.AddImage(doorArrow, image.Pt(doorTile.X*tilePixels,
		doorTile.Y*tilePixels))
	if e != nil {
		return nil, fmt.Errorf("Error adding door arrow: %w", e)
	}

	return image_utils.ToRGBA(decorated), nil
}
