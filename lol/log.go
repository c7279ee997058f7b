// Package lol (log of location) is a small leveled logger that prints a
// timestamp, a colourised level tag and the source location of the call, so
// that a failure inside a deeply nested encode can be traced to the line that
// reported it.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"go.uber.org/atomic"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{
	"off",
	"fatal",
	"error",
	"warn",
	"info",
	"debug",
	"trace",
}

type (
	// Ln prints its arguments separated by spaces.
	Ln func(a ...any)
	// F prints like fmt.Printf.
	F func(format string, a ...any)
	// S prints a spew.Sdump of the arguments.
	S func(a ...any)
	// C takes a closure so the message is only built when the level is active.
	C func(closure func() string)
	// Chk prints the error if it is not nil and reports whether it was.
	Chk func(e error) bool
	// Err builds an error with fmt.Errorf and prints it before returning it.
	Err func(format string, a ...any) error

	// LevelPrinter is the set of printers for one level.
	LevelPrinter struct {
		Ln
		F
		S
		C
		Chk
		Err
	}

	// LevelSpec is the id, tag and colouriser of a level.
	LevelSpec struct {
		ID        int
		Name      string
		Colorizer func(a ...any) string
	}
)

var (
	LevelSpecs = []LevelSpec{
		{Off, "", NoSprint},
		{Fatal, "FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
		{Error, "ERR", color.New(color.FgHiRed).Sprint},
		{Warn, "WRN", color.New(color.FgHiYellow).Sprint},
		{Info, "INF", color.New(color.FgHiGreen).Sprint},
		{Debug, "DBG", color.New(color.FgHiBlue).Sprint},
		{Trace, "TRC", color.New(color.FgHiMagenta).Sprint},
	}
	// NoTimeStamp disables the timestamp prefix, which is handy in tests that
	// compare log output.
	NoTimeStamp atomic.Bool
)

// NoSprint returns nothing no matter what it is given.
func NoSprint(a ...any) string { return "" }

// Log is the set of printers for each level.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the set of error checkers for each level.
type Check struct {
	F, E, W, I, D, T Chk
}

// Errorf is the set of logged error constructors for each level.
type Errorf struct {
	F, E, W, I, D, T Err
}

// Logger bundles the printers, checkers and error constructors.
type Logger struct {
	*Log
	*Check
	*Errorf
}

// Level is the highest level currently printed.
var Level atomic.Int32

// Main is the logger used by the log, chk and errorf shortcut packages.
var Main = &Logger{}

func init() {
	Main.Log, Main.Check, Main.Errorf = New(os.Stderr)
	SetLoggers(Info)
}

// SetLoggers sets the active level.
func SetLoggers(level int) {
	if level < Off || level > Trace {
		level = Info
	}
	Level.Store(int32(level))
	Main.Log.T.F("log level %s", LevelSpecs[level].Colorizer(LevelNames[level]))
}

// GetLogLevel returns the level number of a level name, or Info if the name
// is not known.
func GetLogLevel(level string) (i int) {
	level = strings.ToLower(strings.TrimSpace(level))
	for i = range LevelNames {
		if level == LevelNames[i] {
			return i
		}
	}
	return Info
}

// SetLogLevel sets the active level by name.
func SetLogLevel(level string) { SetLoggers(GetLogLevel(level)) }

// JoinStrings joins anything into a space separated string.
func JoinStrings(a ...any) (s string) {
	var b strings.Builder
	for i := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprint(a[i]))
	}
	return b.String()
}

var msgCol = color.New(color.FgBlue).Sprint

func emit(writer io.Writer, l int32, text string) {
	_, _ = fmt.Fprintf(writer,
		"%s%s %s %s\n",
		msgCol(TimeStamper()),
		LevelSpecs[l].Colorizer(LevelSpecs[l].Name),
		text,
		msgCol(GetLoc(3)),
	)
}

// GetPrinter returns the printers for level l writing to writer.
func GetPrinter(l int32, writer io.Writer) LevelPrinter {
	active := func() bool { return Level.Load() >= l }
	return LevelPrinter{
		Ln: func(a ...any) {
			if active() {
				emit(writer, l, JoinStrings(a...))
			}
		},
		F: func(format string, a ...any) {
			if active() {
				emit(writer, l, fmt.Sprintf(format, a...))
			}
		},
		S: func(a ...any) {
			if active() {
				emit(writer, l, spew.Sdump(a...))
			}
		},
		C: func(closure func() string) {
			if active() {
				emit(writer, l, closure())
			}
		},
		Chk: func(e error) bool {
			if e == nil {
				return false
			}
			if active() {
				emit(writer, l, e.Error())
			}
			return true
		},
		Err: func(format string, a ...any) error {
			err := fmt.Errorf(format, a...)
			if active() {
				emit(writer, l, err.Error())
			}
			return err
		},
	}
}

// New creates the printers, checkers and error constructors for every level.
func New(writer io.Writer) (l *Log, c *Check, errorf *Errorf) {
	l = &Log{
		T: GetPrinter(Trace, writer),
		D: GetPrinter(Debug, writer),
		I: GetPrinter(Info, writer),
		W: GetPrinter(Warn, writer),
		E: GetPrinter(Error, writer),
		F: GetPrinter(Fatal, writer),
	}
	c = &Check{
		F: l.F.Chk,
		E: l.E.Chk,
		W: l.W.Chk,
		I: l.I.Chk,
		D: l.D.Chk,
		T: l.T.Chk,
	}
	errorf = &Errorf{
		F: l.F.Err,
		E: l.E.Err,
		W: l.W.Err,
		I: l.I.Err,
		D: l.D.Err,
		T: l.T.Err,
	}
	return
}

// TimeStamper generates the timestamp prefix.
func TimeStamper() (s string) {
	if NoTimeStamp.Load() {
		return
	}
	return time.Now().Format("2006-01-02T15:04:05.000Z07:00 ")
}

// GetLoc returns the file:line of the caller skip frames up.
func GetLoc(skip int) (output string) {
	_, file, line, _ := runtime.Caller(skip)
	return fmt.Sprintf("%s:%d", file, line)
}
