package logger

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

type palette struct {
	time      string
	component string
	key       string
	number    string
	warn      string
	warnBg    string
	err       string
	errBg     string
}

// Gruvbox Dark (warm, muted)
var gruvbox = palette{
	time:      "\x1b[38;5;108m",
	component: "\x1b[38;5;208m",
	key:       "\x1b[38;5;245m",
	number:    "\x1b[38;5;175m",
	warn:      "\x1b[38;5;214m",
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m",
	errBg:     "\x1b[48;5;88m",
}

// Everforest Dark (natural greens)
var everforest = palette{
	time:      "\x1b[38;5;107m",
	component: "\x1b[38;5;108m",
	key:       "\x1b[38;5;245m",
	number:    "\x1b[38;5;108m",
	warn:      "\x1b[38;5;179m",
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m",
	errBg:     "\x1b[48;5;52m",
}

var currentTheme = "everforest"

// SetTheme configures the color scheme for log output.
// "plain" disables colors; unknown names are ignored.
func SetTheme(theme string) {
	switch theme {
	case "everforest", "gruvbox", "plain":
		currentTheme = theme
	}
}

func colors() palette {
	switch currentTheme {
	case "gruvbox":
		return gruvbox
	case "plain":
		return palette{}
	default:
		return everforest
	}
}

func paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + colorReset
}

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  watch  Regenerated client  functions=12 duration_ms=41"
type minimalEncoder struct {
	zapcore.Encoder
	pool buffer.Pool
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		pool:    buffer.NewPool(),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		pool:    enc.pool,
	}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	p := colors()
	final := enc.pool.Get()

	final.AppendString(paint(p.time, ent.Time.Format("15:04:05")))

	// Info is the quiet default and carries no level tag
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelString(ent.Level, p))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(paint(p.component, abbreviateName(ent.LoggerName)))
	}

	final.AppendString("  ")
	final.AppendString(ent.Message)

	if len(fields) > 0 {
		final.AppendString("  ")
		final.AppendString(formatFields(fields, p))
	}

	final.AppendString("\n")
	return final, nil
}

func levelString(level zapcore.Level, p palette) string {
	switch level {
	case zapcore.DebugLevel:
		return paint(p.key, "DEBUG")
	case zapcore.WarnLevel:
		return paint(colorBold+p.warnBg+p.warn, "WARN")
	case zapcore.ErrorLevel:
		return paint(colorBold+p.errBg+p.err, "ERROR")
	default:
		return paint(colorBold+p.errBg+p.err, level.CapitalString())
	}
}

// abbreviateName shortens component names: generate.golang -> g.golang
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// fieldValue renders a zap field value without its key.
func fieldValue(field zapcore.Field) (string, bool) {
	switch field.Type {
	case zapcore.StringType:
		return field.String, false
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
		return fmt.Sprintf("%d", field.Integer), true
	case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", uint64(field.Integer)), true
	case zapcore.BoolType:
		return fmt.Sprintf("%t", field.Integer == 1), false
	case zapcore.Float64Type:
		return fmt.Sprintf("%g", math.Float64frombits(uint64(field.Integer))), true
	case zapcore.Float32Type:
		return fmt.Sprintf("%g", math.Float32frombits(uint32(field.Integer))), true
	case zapcore.DurationType:
		return time.Duration(field.Integer).String(), true
	case zapcore.ErrorType:
		if err, ok := field.Interface.(error); ok && err != nil {
			return err.Error(), false
		}
		return "", false
	case zapcore.SkipType:
		return "", false
	}

	if field.Interface != nil {
		return fmt.Sprintf("%v", field.Interface), false
	}
	return field.String, false
}

// formatFields renders every field as key=value; no field is ever dropped.
func formatFields(fields []zapcore.Field, p palette) string {
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if field.Type == zapcore.SkipType {
			continue
		}
		val, numeric := fieldValue(field)
		if numeric {
			val = paint(p.number, val)
		}
		parts = append(parts, paint(p.key, field.Key+"=")+val)
	}
	return strings.Join(parts, " ")
}
