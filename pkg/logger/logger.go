package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger - структурированный логгер с парами ключ-значение
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Fatal(msg string, keysAndValues ...interface{})
	With(keysAndValues ...interface{}) Logger
}

type zerologLogger struct {
	zl zerolog.Logger
}

// New создает логгер с указанным уровнем. В production пишет JSON в stdout,
// иначе в консоль в читаемом виде.
func New(level string, production bool) Logger {
	if production {
		return NewWithWriter(level, outputWriter(true, os.Stdout))
	}
	return NewWithWriter(level, outputWriter(false, os.Stderr))
}

func NewWithWriter(level string, w io.Writer) Logger {
	zl := zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
	return &zerologLogger{zl: zl}
}

// NewNop возвращает логгер, который ничего не пишет (для тестов)
func NewNop() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

func outputWriter(production bool, out io.Writer) io.Writer {
	if production {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *zerologLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.write(l.zl.Debug(), msg, keysAndValues)
}

func (l *zerologLogger) Info(msg string, keysAndValues ...interface{}) {
	l.write(l.zl.Info(), msg, keysAndValues)
}

func (l *zerologLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.write(l.zl.Warn(), msg, keysAndValues)
}

func (l *zerologLogger) Error(msg string, keysAndValues ...interface{}) {
	l.write(l.zl.Error(), msg, keysAndValues)
}

func (l *zerologLogger) Fatal(msg string, keysAndValues ...interface{}) {
	l.write(l.zl.Fatal(), msg, keysAndValues)
}

func (l *zerologLogger) With(keysAndValues ...interface{}) Logger {
	return &zerologLogger{zl: l.zl.With().Fields(normalizeFields(keysAndValues)).Logger()}
}

func (l *zerologLogger) write(e *zerolog.Event, msg string, keysAndValues []interface{}) {
	e.Fields(normalizeFields(keysAndValues)).Msg(msg)
}

// normalizeFields превращает список ключ-значение в map для zerolog.
// Нечетный хвост пишется под ключом "extra", ошибки - строкой.
func normalizeFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2+1)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 >= len(keysAndValues) {
			fields["extra"] = keysAndValues[i]
			break
		}
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		if err, isErr := keysAndValues[i+1].(error); isErr && err != nil {
			fields[key] = err.Error()
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
