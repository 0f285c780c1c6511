package logging

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Fields carries structured context attached to a log line.
type Fields map[string]interface{}

var debugEnabled = os.Getenv("ARENA_DEBUG") == "1"

func emit(level, msg string, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	fields["level"] = level
	fields["ts"] = time.Now().UTC().Format(time.RFC3339)
	fields["msg"] = msg
	b, err := json.Marshal(fields)
	if err != nil {
		// fallback to plain logging
		log.Printf("%s: %s (%v)\n", level, msg, fields)
		return
	}
	log.Println(string(b))
}

// Debug logs a debug message; suppressed unless ARENA_DEBUG=1.
func Debug(msg string, fields Fields) {
	if !debugEnabled {
		return
	}
	emit("debug", msg, fields)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	emit("info", msg, fields)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	emit("error", msg, fields)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	emit("fatal", msg, fields)
	os.Exit(1)
}
