package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tc := range cases {
		for _, format := range []string{"json", "console"} {
			l := New(tc.level, format)
			if !l.Core().Enabled(tc.want) {
				t.Fatalf("%s/%s: level %s should be enabled", tc.level, format, tc.want)
			}
			if tc.want > zapcore.DebugLevel && l.Core().Enabled(tc.want-1) {
				t.Fatalf("%s/%s: level %s should be disabled", tc.level, format, tc.want-1)
			}
		}
	}
}
