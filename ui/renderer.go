package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 50 // Maximum number of scores to show in graph
	borderPadding = 10 // Padding around game area
)

var (
	snakeColor = rl.Color{R: 70, G: 190, B: 90, A: 255}
	headColor  = rl.Color{R: 120, G: 240, B: 140, A: 255}
)

// Renderer draws engine snapshots with raylib.
type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a seventh of the window
	r.statsPanel = r.screenWidth / 7
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame. history holds the scores of finished games.
func (r *Renderer) Draw(s game.Snapshot, history []int, autopilot bool) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/45, r.statsPanel/9)
	lineHeight := min(r.screenHeight/35, r.statsPanel/7)

	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)
	r.cellSize = min(availableWidth/int32(s.Size), availableHeight/int32(s.Size))
	r.totalGridWidth = r.cellSize * int32(s.Size)
	r.totalGridHeight = r.cellSize * int32(s.Size)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	for row := 0; row < s.Size; row++ {
		for col := 0; col < s.Size; col++ {
			x, y := r.cellOrigin(types.Coordinate{Row: row, Col: col})
			rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.Gray)
		}
	}

	if s.HasFood() {
		x, y := r.cellOrigin(s.FoodCoord)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Red)
	}

	for i, n := range s.Body {
		x, y := r.cellOrigin(n.Coord)
		switch {
		case i == len(s.Body)-1:
			rl.DrawRectangle(x, y, r.cellSize, r.cellSize, headColor)
			r.drawHeading(x, y, s.Direction)
		case i == 0:
			rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.White)
		default:
			rl.DrawRectangle(x, y, r.cellSize, r.cellSize, snakeColor)
		}
	}

	if s.State == game.GameOver {
		text := fmt.Sprintf("Game Over (%s)! Score %d. Press Enter", s.Cause, s.Score)
		if s.Cause == game.CauseBoardFull {
			text = fmt.Sprintf("Board cleared! Score %d. Press Enter", s.Score)
		}
		textWidth := rl.MeasureText(text, fontSize)
		rl.DrawText(text, r.offsetX+(r.totalGridWidth-textWidth)/2, r.offsetY+r.totalGridHeight/2, fontSize, rl.Yellow)
	}

	r.drawStatsPanel(s, history, autopilot, fontSize, lineHeight)
	rl.EndDrawing()
}

func (r *Renderer) cellOrigin(c types.Coordinate) (int32, int32) {
	return r.offsetX + int32(c.Col)*r.cellSize, r.offsetY + int32(c.Row)*r.cellSize
}

// drawHeading puts a direction indicator on the head cell.
func (r *Renderer) drawHeading(x, y int32, d types.Direction) {
	half := r.cellSize / 2
	var a, b, c rl.Vector2
	switch d {
	case types.RIGHT:
		a = rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)}
		b = rl.Vector2{X: float32(x + half), Y: float32(y)}
		c = rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)}
	case types.LEFT:
		a = rl.Vector2{X: float32(x), Y: float32(y + half)}
		b = rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)}
		c = rl.Vector2{X: float32(x + half), Y: float32(y)}
	case types.DOWN:
		a = rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)}
		b = rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)}
		c = rl.Vector2{X: float32(x), Y: float32(y + half)}
	default:
		a = rl.Vector2{X: float32(x + half), Y: float32(y)}
		b = rl.Vector2{X: float32(x), Y: float32(y + half)}
		c = rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)}
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawStatsPanel(s game.Snapshot, history []int, autopilot bool, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	lines := []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("High: %d", s.HighScore),
		fmt.Sprintf("Length: %d", len(s.Body)),
		fmt.Sprintf("Speed: %dms", s.Interval.Milliseconds()),
		fmt.Sprintf("Games: %d", len(history)),
	}
	if autopilot {
		lines = append(lines, "Autopilot")
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	r.drawScoreGraph(history, statsX, fontSize)
}

// drawScoreGraph plots the most recent finished game scores.
func (r *Renderer) drawScoreGraph(history []int, graphX, fontSize int32) {
	graphY := r.screenHeight - r.graphHeight - fontSize*2
	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, r.graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	if len(history) > maxScores {
		history = history[len(history)-maxScores:]
	}
	if len(history) < 2 {
		return
	}

	maxScore := 1
	sum := 0
	for _, score := range history {
		if score > maxScore {
			maxScore = score
		}
		sum += score
	}

	point := func(i, score int) (int32, int32) {
		x := graphX + int32(float32(r.graphWidth)*float32(i)/float32(maxScores))
		y := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(score)/float32(maxScore))
		return x, y
	}
	for j := 1; j < len(history); j++ {
		x1, y1 := point(j-1, history[j-1])
		x2, y2 := point(j, history[j])
		rl.DrawLine(x1, y1, x2, y2, snakeColor)
	}

	// Average score line (dashed)
	avg := float32(sum) / float32(len(history))
	avgY := graphY + r.graphHeight - int32(float32(r.graphHeight)*avg/float32(maxScore))
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.White)
	}
}
