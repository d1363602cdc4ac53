package tui

// SlotChangedMsg signals the slot file was modified by another process.
type SlotChangedMsg struct{}

// clearNoticeMsg expires the notice line. Seq guards against clearing a
// newer notice than the one this expiry was scheduled for.
type clearNoticeMsg struct {
	Seq int
}
