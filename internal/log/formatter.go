package log

import (
	"fmt"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Formatter is the text formatter used for console and text file output
type Formatter struct {
	logrus.TextFormatter
}

func newFormatter(disableColors bool) *Formatter {
	return &Formatter{
		TextFormatter: logrus.TextFormatter{
			DisableColors:   disableColors,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				return fmt.Sprintf("%s()", path.Base(f.Function)),
					fmt.Sprintf("%s:%d", path.Base(f.File), f.Line)
			},
		},
	}
}
