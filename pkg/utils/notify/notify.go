package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/devantler-tech/farmops/pkg/utils/timer"
	fcolor "github.com/fatih/color"
)

// MessageType selects the symbol and color of a message.
type MessageType int

const (
	// ErrorType is a red ✗ line.
	ErrorType MessageType = iota
	// WarningType is a yellow ⚠ line.
	WarningType
	// ActivityType is a plain ► line.
	ActivityType
	// WaitingType is a cyan ⧗ line used for periodic progress while a wait is pending.
	WaitingType
	// SuccessType is a green ✔ line.
	SuccessType
	// InfoType is a blue ℹ line.
	InfoType
	// TitleType is a bold stage title prefixed with an emoji.
	TitleType
)

// Message is a single notification.
type Message struct {
	Type    MessageType
	Content string
	Args    []any
	// Timer, when set on a SuccessType message, appends the stage and total durations.
	Timer timer.Timer
	// Emoji replaces the default title emoji for TitleType messages.
	Emoji string
	// Writer defaults to os.Stdout.
	Writer io.Writer
}

type style struct {
	symbol string
	color  *fcolor.Color
}

func styleFor(msgType MessageType) style {
	switch msgType {
	case ErrorType:
		return style{symbol: "✗ ", color: fcolor.New(fcolor.FgRed)}
	case WarningType:
		return style{symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)}
	case ActivityType:
		return style{symbol: "► ", color: fcolor.New(fcolor.Reset)}
	case WaitingType:
		return style{symbol: "⧗ ", color: fcolor.New(fcolor.FgCyan)}
	case SuccessType:
		return style{symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)}
	case InfoType:
		return style{symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue)}
	case TitleType:
		return style{color: fcolor.New(fcolor.Reset, fcolor.Bold)}
	default:
		return style{color: fcolor.New(fcolor.Reset)}
	}
}

// WriteMessage renders msg. Write failures are reported on stderr and otherwise ignored.
func WriteMessage(msg Message) {
	writer := msg.Writer
	if writer == nil {
		writer = os.Stdout
	}

	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}

	st := styleFor(msg.Type)

	if msg.Type == TitleType {
		emoji := msg.Emoji
		if emoji == "" {
			emoji = "🚜"
		}

		report(st.color.Fprintf(writer, "%s %s\n", emoji, content))

		return
	}

	report(st.color.Fprintf(writer, "%s%s\n", st.symbol, indent(content, st.symbol)))

	if msg.Type == SuccessType && msg.Timer != nil {
		writeTiming(writer, msg.Timer)
	}
}

func writeTiming(writer io.Writer, tmr timer.Timer) {
	total, stage := tmr.GetTiming()
	green := fcolor.New(fcolor.FgGreen)

	report(green.Fprintf(writer, "⏲ current: %s\n", stage))
	report(green.Fprintf(writer, "  total:  %s\n", total))
}

func report(_ int, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

// indent aligns continuation lines of multi-line content under the first line's text.
func indent(content, symbol string) string {
	if symbol == "" || !strings.Contains(content, "\n") {
		return content
	}

	pad := strings.Repeat(" ", len([]rune(symbol)))
	lines := strings.Split(content, "\n")

	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}

// Errorf writes an error line.
func Errorf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: writer})
}

// Warningf writes a warning line.
func Warningf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: writer})
}

// Activityf writes an activity line.
func Activityf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ActivityType, Content: format, Args: args, Writer: writer})
}

// Waitingf writes a progress line for a pending wait.
func Waitingf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WaitingType, Content: format, Args: args, Writer: writer})
}

// Successf writes a success line.
func Successf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Writer: writer})
}

// SuccessWithTimerf writes a success line followed by the timer's durations.
func SuccessWithTimerf(writer io.Writer, tmr timer.Timer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Timer: tmr, Writer: writer})
}

// Infof writes an informational line.
func Infof(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: InfoType, Content: format, Args: args, Writer: writer})
}

// Titlef writes a stage title.
func Titlef(writer io.Writer, emoji, format string, args ...any) {
	WriteMessage(Message{Type: TitleType, Content: fmt.Sprintf(format, args...), Emoji: emoji, Writer: writer})
}
