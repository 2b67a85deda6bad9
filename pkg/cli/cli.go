package cli

import (
	"io"

	"github.com/rs/zerolog"
)

// Context is bound to every command's Run method.
type Context struct {
	Out    io.Writer
	Logger zerolog.Logger
}

// NewContext builds a Context writing results to out and logs to logOut.
// An unknown level falls back to info.
func NewContext(out io.Writer, logOut io.Writer, level string) *Context {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: logOut}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return &Context{Out: out, Logger: logger}
}

// App is the kong grammar of the contamers command.
type App struct {
	LogLevel string    `help:"Log level" default:"info" enum:"debug,info,warn,error" env:"CONTAMERS_LOG_LEVEL"`
	People   PeopleCmd `cmd:"" help:"Print people collected into a linked list"`
	Words    WordsCmd  `cmd:"" help:"Look up words in a dictionary trie"`
}

var CLI App
