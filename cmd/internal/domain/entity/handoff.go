package entity

const (
	HandoffKeyResults = "searchResults"
	HandoffKeyQuery   = "searchQuery"
)

// HandoffEntry is one stored blob of a browser session's search handoff.
type HandoffEntry struct {
	SessionID string `gorm:"primaryKey;column:session_id"`
	Key       string `gorm:"primaryKey;column:handoff_key"`
	Value     string `gorm:"type:text"`
	UpdatedAt int64 `gorm:"autoUpdateTime:false;index"`
}
