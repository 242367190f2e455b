package maskedit

// Tool selects how strokes composite onto the buffer.
type Tool int

const (
	// ToolDraw paints the marker color with source-over blending.
	ToolDraw Tool = iota
	// ToolErase clears pixels under the stroke with destination-out
	// blending, regardless of their prior state.
	ToolErase
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolDraw:
		return "draw"
	case ToolErase:
		return "erase"
	default:
		return "unknown"
	}
}
