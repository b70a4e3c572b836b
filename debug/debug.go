package debug

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Lex    bool
	Parse  bool
	Encode bool
	Build  bool
	Match  bool
}

var (
	d *debug

	loggerOnce sync.Once
	logger     *slog.Logger
)

func init() {
	d = &debug{}
	d.Lex = boolEnv("OBO_DEBUG_LEX")
	d.Parse = boolEnv("OBO_DEBUG_PARSE")
	d.Encode = boolEnv("OBO_DEBUG_ENCODE")
	d.Build = boolEnv("OBO_DEBUG_BUILD")
	d.Match = boolEnv("OBO_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Build() bool {
	return d.Build
}
func Match() bool {
	return d.Match
}

// Logger returns the logger used for debug tracing. It writes text records
// to stderr at debug level.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		if logger != nil {
			return
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	})
	return logger
}

// SetLogger replaces the debug logger. A nil logger restores the default.
func SetLogger(l *slog.Logger) {
	loggerOnce.Do(func() {})
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	logger = l
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
