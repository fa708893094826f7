package model

// NoticeLevel is the severity of a user-facing notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarn
	NoticeError
)

// String returns the lowercase level name.
func (l NoticeLevel) String() string {
	switch l {
	case NoticeWarn:
		return "warn"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a one-line message shown in the status bar.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// Info builds an info notice.
func Info(text string) Notice { return Notice{Level: NoticeInfo, Text: text} }

// Warn builds a warning notice.
func Warn(text string) Notice { return Notice{Level: NoticeWarn, Text: text} }

// Error builds an error notice.
func Error(text string) Notice { return Notice{Level: NoticeError, Text: text} }
