package ui

import (
	"fmt"
	"sort"

	"snake-minigame/game"
	"snake-minigame/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	headerHeight  = 40
)

// Renderer keeps the visuals the simulation spawns and draws them onto the
// arena each frame.
type Renderer struct {
	assets  *Assets
	maxCell int32

	next    types.VisualID
	visuals map[types.VisualID]types.Visual

	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(assets *Assets, maxCell int) *Renderer {
	r := &Renderer{
		assets:  assets,
		maxCell: int32(maxCell),
		visuals: make(map[types.VisualID]types.Visual),
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) Spawn(v types.Visual) types.VisualID {
	r.next++
	r.visuals[r.next] = v
	return r.next
}

func (r *Renderer) Despawn(id types.VisualID) {
	delete(r.visuals, id)
}

func (r *Renderer) Move(id types.VisualID, p types.Point) {
	if v, ok := r.visuals[id]; ok {
		v.Position = p
		r.visuals[id] = v
	}
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - headerHeight - borderPadding*2
	r.cellSize = min(availableWidth/int32(g.Grid.Width), availableHeight/int32(g.Grid.Height))
	if r.maxCell > 0 {
		r.cellSize = min(r.cellSize, r.maxCell)
	}

	gridWidth := r.cellSize * int32(g.Grid.Width)
	gridHeight := r.cellSize * int32(g.Grid.Height)
	r.offsetX = (r.screenWidth - gridWidth) / 2
	r.offsetY = headerHeight + (r.screenHeight-headerHeight-gridHeight)/2

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, gridWidth+2, gridHeight+2, rl.DarkGray)
	for x := 0; x < g.Grid.Width; x++ {
		for y := 0; y < g.Grid.Height; y++ {
			rl.DrawRectangleLines(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize, r.cellSize, rl.Gray)
		}
	}

	for _, v := range r.ordered() {
		r.drawVisual(v)
	}

	r.drawHeader(g)
	r.drawOverlay(g, gridWidth, gridHeight)
	rl.EndDrawing()
}

// ordered returns visuals smallest first so the head lands on top of any
// body segment sharing its cell.
func (r *Renderer) ordered() []types.Visual {
	ids := make([]types.VisualID, 0, len(r.visuals))
	for id := range r.visuals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := r.visuals[ids[i]], r.visuals[ids[j]]
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		return ids[i] < ids[j]
	})
	out := make([]types.Visual, len(ids))
	for i, id := range ids {
		out[i] = r.visuals[id]
	}
	return out
}

func (r *Renderer) drawVisual(v types.Visual) {
	size := int32(float32(r.cellSize) * v.Size)
	inset := (r.cellSize - size) / 2
	x := r.offsetX + int32(v.Position.X)*r.cellSize + inset
	y := r.offsetY + int32(v.Position.Y)*r.cellSize + inset

	if tex, ok := r.assets.Texture(v.Image); ok && tex.Width > 0 {
		scale := float32(size) / float32(tex.Width)
		rl.DrawTextureEx(tex, rl.Vector2{X: float32(x), Y: float32(y)}, 0, scale, rl.White)
		return
	}
	rl.DrawRectangle(x, y, size, size, toRL(v.Color))
}

func (r *Renderer) drawHeader(g *game.Game) {
	fontSize := int32(20)
	text := fmt.Sprintf("Score: %d", g.Score())
	if s := g.Session(); s != nil {
		text = fmt.Sprintf("%s   Restarts: %d   Time: %.0fs   Step: %v", text, s.Restarts, s.ElapsedTime(), g.TickInterval())
	}
	rl.DrawText(text, borderPadding, (headerHeight-fontSize)/2, fontSize, rl.White)
}

func (r *Renderer) drawOverlay(g *game.Game, gridWidth, gridHeight int32) {
	var text string
	switch g.Phase() {
	case types.WaitPlayer:
		text = "Press an arrow key to start"
	case types.GameOver:
		text = "Game Over! Press an arrow key"
	case types.Win:
		text = "You win!"
	default:
		if err := g.Err(); err != nil {
			text = "Simulation halted, press Enter"
		}
	}
	if text == "" {
		return
	}

	fontSize := max(gridHeight/20, 12)
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(gridWidth-textWidth)/2,
		r.offsetY+gridHeight/2-fontSize/2,
		fontSize, rl.Yellow)
}

func toRL(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
