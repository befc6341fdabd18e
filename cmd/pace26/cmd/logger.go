package cmd

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	colorRed    = 31
	colorYellow = 33
	colorBlue   = 36
	colorGray   = 37
)

type LogOptions struct {
	// Verbose enables debug messages, including one per classified line.
	Verbose bool
	// DisableColor if true will disable outputting colors.
	DisableColor bool
}

func newLogger(out io.Writer, options LogOptions) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	if options.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	log.SetFormatter(&Formatter{DisableColor: options.DisableColor})
	return log
}

func getColorByLevel(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return colorGray
	case logrus.WarnLevel:
		return colorYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return colorRed
	default:
		return colorBlue
	}
}

// Formatter prints one line per entry: the level, the message and the
// fields sorted by key. Instances are usually checked interactively, so
// there are no timestamps.
type Formatter struct {
	DisableColor bool
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	newLog := fmt.Sprintf("[%s] %s", strings.ToUpper(entry.Level.String()), entry.Message)
	for _, key := range keys {
		newLog += fmt.Sprintf(" %s=%v", key, entry.Data[key])
	}

	if !f.DisableColor {
		fmt.Fprintf(b, "\033[%dm%s\033[0m", getColorByLevel(entry.Level), newLog)
	} else {
		b.WriteString(newLog)
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}
