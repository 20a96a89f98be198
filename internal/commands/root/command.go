package root

import (
	"github.com/artuross/kaleidoscope/internal/commands/parse"
	"github.com/artuross/kaleidoscope/internal/commands/repl"
	"github.com/artuross/kaleidoscope/internal/commands/tokens"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.App {
	return &cli.App{
		Name:  "kaleidoscope",
		Usage: "Kaleidoscope language front end.",
		Commands: []*cli.Command{
			parse.NewCommand(),
			tokens.NewCommand(),
			repl.NewCommand(),
		},
	}
}
