package game

// Grid dimensions (in cells).
const (
	GridWidth  = 30
	GridHeight = 20
)

// Cell rendering (in window pixels).
const (
	CellSize  = 20
	CellInset = 3 // visual spacing for rounded cells
)

// HUD band reserved at the top so the playfield never overlaps text.
const HudReservedPx = 56

// Window defaults derive from the grid so cells stay square.
const (
	WindowWidth  = GridWidth * CellSize
	WindowHeight = HudReservedPx + GridHeight*CellSize
)

// Tick rates (ticks per second). The game starts slow and speeds up by one
// tick/s per food eaten, always clamped to [MinFPS, MaxFPS].
const (
	BaseFPS  = 12
	MinFPS   = 2
	MaxFPS   = 24
	StartFPS = max(MinFPS, BaseFPS/5) // 5x slower start
)

// Spawn rules.
const (
	SpawnMargin  = 1 // interior margin: food/obstacles never spawn on the outer ring
	MaxObstacles = 3
	StartLength  = 3
)

// Playfield border.
const (
	BorderThickness = 3
	BorderRadius    = 8
)

// Font atlas layout (built at startup: 32 cols x 4 rows, ASCII 0-127).
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 32
	FontRows   = 4
	FontAtlasW = FontCellW * FontCols // 224
	FontAtlasH = FontCellH * FontRows // 52
)
