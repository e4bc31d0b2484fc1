package game

// DrawBoard renders obstacles, food, and snake as point sprites, each with a
// soft drop shadow, scaled from logical window pixels to the framebuffer.
func (r *Renderer) DrawBoard(b *Board, fbW, fbH int) {
	s := float32(fbW) / float32(WindowWidth)
	size := float32(CellSize-2*CellInset) * s
	buf := r.spriteBuf[:0]

	center := func(c Cell) (float32, float32) {
		x := float32(c.X*CellSize+CellSize/2) * s
		y := float32(HudReservedPx+c.Y*CellSize+CellSize/2) * s
		return x, y
	}
	push := func(x, y, sz float32, col RGB, alpha float32, kind float32) {
		buf = append(buf, x, y, sz,
			float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, alpha, kind)
	}
	shadowOf := func(c Cell, alpha float32) {
		x, y := center(c)
		push(x, y+2*s, size*1.1, RGB{}, alpha, SpriteShadow)
	}

	for c := range b.Obstacles {
		shadowOf(c, 80.0/255)
		x, y := center(c)
		push(x, y, size, Palette.Obstacle, 1, SpriteObstacle)
	}
	if b.HasFood {
		shadowOf(b.Food, FoodShadowAlpha/255.0)
		x, y := center(b.Food)
		push(x, y, size, Palette.Food, 1, SpriteFood)
	}
	for _, c := range b.Snake {
		shadowOf(c, SnakeShadowAlpha/255.0)
		x, y := center(c)
		push(x, y, size, Palette.Snake, 1, SpriteSnake)
	}

	r.spriteBuf = buf
	r.DrawSprites(buf, fbW, fbH)
}

// DrawPlayfieldBorder outlines the playable area below the HUD in red.
func (r *Renderer) DrawPlayfieldBorder(fbW, fbH int) {
	s := float32(fbW) / float32(WindowWidth)
	red := Palette.Border
	r.DrawPanel(Panel{
		X: 4 * s, Y: HudReservedPx * s,
		W: (WindowWidth - 8) * s, H: (WindowHeight - HudReservedPx - 4) * s,
		Radius:      BorderRadius * s,
		Fill:        [4]float32{0, 0, 0, 0},
		BorderCol:   [4]float32{float32(red.R) / 255, float32(red.G) / 255, float32(red.B) / 255, 1},
		BorderWidth: BorderThickness * s,
	}, fbW, fbH)
}
