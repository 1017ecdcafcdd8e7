package engine

// WindowConfig describes the play area requested from the display.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// Display is the rendering collaborator driven by the game manager. The tcell
// driver is the production implementation; tests substitute recorders.
type Display interface {
	Open(cfg WindowConfig) error
	Close()
	Clear()
	Canvas() Canvas
	Show()
}
