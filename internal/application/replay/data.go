package replay

// FrameInput records the action masks for a single tick
type FrameInput struct {
	F int    `json:"f"`           // Frame number
	H uint16 `json:"h,omitempty"` // Held actions
	P uint16 `json:"p,omitempty"` // Actions pressed this tick
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Title     string       `json:"title"`
	Levels    []string     `json:"levels"`
	LevelsDir string       `json:"levelsDir,omitempty"` // Empty means the config's own levels
	TickRate  int          `json:"tickRate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
