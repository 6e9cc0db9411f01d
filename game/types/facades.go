package types

import "github.com/google/uuid"

type Color struct {
	R, G, B, A uint8
}

var (
	ColorWhite = Color{R: 245, G: 245, B: 245, A: 255}
	ColorBody  = Color{R: 200, G: 200, B: 200, A: 255}
	ColorGreen = Color{R: 60, G: 200, B: 80, A: 255}
	ColorRed   = Color{R: 220, G: 50, B: 50, A: 255}
	ColorBlue  = Color{R: 60, G: 110, B: 230, A: 255}
)

// AssetHandle refers to an asset that may still be loading.
type AssetHandle uint32

// NoAsset is the zero handle; facades ignore it.
const NoAsset AssetHandle = 0

// VisualID refers to an entity owned by the render facade.
type VisualID uint64

// Visual describes an entity to draw at a grid cell. Size is a fraction of
// the cell edge.
type Visual struct {
	Position Point
	Color    Color
	Size     float32
	Image    AssetHandle
}

// Key is a host keyboard key the simulation listens to.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyS
	KeyA
	KeyD
)

// DirectionKeys maps each heading to the keys that request it.
var DirectionKeys = map[Direction][]Key{
	Up:    {KeyUp, KeyW},
	Down:  {KeyDown, KeyS},
	Left:  {KeyLeft, KeyA},
	Right: {KeyRight, KeyD},
}

// AssetProvider starts loading an asset and hands back a handle that is
// usable before loading finishes.
type AssetProvider interface {
	Load(path string) AssetHandle
}

type RenderFacade interface {
	Spawn(v Visual) VisualID
	Despawn(id VisualID)
	Move(id VisualID, p Point)
}

// AudioFacade plays a sound once, fire-and-forget.
type AudioFacade interface {
	PlayOnce(h AssetHandle)
}

type InputFacade interface {
	JustPressed(k Key) bool
	Pressed(k Key) bool
}

// RandomSource draws a uniform integer in [0,n).
type RandomSource interface {
	UniformInt(n int) int
}

// LifecycleObserver is told when a minigame becomes the active one.
type LifecycleObserver interface {
	MinigameActivated(game GameType, session uuid.UUID)
}
