package chklog

import "github.com/rs/zerolog"

// Zerolog adapts a github.com/rs/zerolog.Logger to the chklog.Logger
// collaborator interface, grounded directly on
// joeycumines-go-utilpkg/logiface-zerolog/zerolog.go, which wraps
// rs/zerolog for the same "structured sink behind a small interface"
// purpose.
type Zerolog struct {
	log zerolog.Logger
}

// NewZerolog wraps an existing zerolog.Logger.
func NewZerolog(log zerolog.Logger) Zerolog {
	return Zerolog{log: log}
}

func (z Zerolog) Event(level Level, msg string) Event {
	var ev *zerolog.Event
	switch level {
	case LevelError:
		ev = z.log.Error()
	case LevelWarn:
		ev = z.log.Warn()
	default:
		ev = z.log.Debug()
	}
	return zerologEvent{ev: ev, msg: msg}
}

type zerologEvent struct {
	ev  *zerolog.Event
	msg string
}

func (e zerologEvent) Int(key string, v int) Event {
	e.ev = e.ev.Int(key, v)
	return e
}

func (e zerologEvent) Str(key string, v string) Event {
	e.ev = e.ev.Str(key, v)
	return e
}

func (e zerologEvent) Err(err error) Event {
	e.ev = e.ev.Err(err)
	return e
}

func (e zerologEvent) Send() {
	e.ev.Msg(e.msg)
}
