package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorWarning = 0xFEE75C // Yellow
	ColorInfo    = 0x3498DB // Blue
	ColorGold    = 0xF1C40F // Gold, used for alert DMs
	ColorOrange  = 0xE67E22 // Orange, passing-but-thin RTP
)

// RTP display thresholds. Anything at or above Hot is player-friendly
// enough to highlight; Good is a comfortable pass.
const (
	RTPHotThreshold  = 85.0
	RTPGoodThreshold = 75.0
)

// UI constants
const (
	MaxLeaderboardRows = 10
)
