package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Layout field helpers

func NodeID(id string) Field {
	return String("node_id", id)
}

func RootID(id string) Field {
	return String("root_id", id)
}

func BuildID(id string) Field {
	return String("build_id", id)
}

func Strategy(name string) Field {
	return String("strategy", name)
}

func Depth(level int) Field {
	return Int("level", level)
}

func Point(x, y float64) Field {
	return Field{Key: "position", Value: map[string]float64{"x": x, "y": y}}
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}
