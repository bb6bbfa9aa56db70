package consts

// Colors
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorYellow = "\033[93m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[96m"
	ColorDim    = "\033[2m"
)

// Prompt decorations.
const (
	PromptMark   string = ColorGreen + "? " + ColorReset
	PromptCursor string = ColorCyan + "> " + ColorReset
	InvalidMark  string = ColorRed + "! " + ColorReset
)
