package models

// NoticeLevel classifies a user-facing message emitted after an operation.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is a message plus its severity, ready for a presentation layer
// to render however it likes.
type Notice struct {
	Level   NoticeLevel
	Message string
}
