package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rmaia/consolida/cmd"
)

func main() {
	// Shell completion for the subcommands and their flags. Complete is a
	// no-op unless invoked by the completion hook.
	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
		},
		Sub: map[string]*complete.Command{
			"report": {Flags: map[string]complete.Predictor{
				"o":       predict.Files("*.xlsx"),
				"offline": predict.Nothing,
			}},
			"position": {Flags: map[string]complete.Predictor{
				"u": predict.Nothing,
			}},
			"sales":  {},
			"income": {},
			"assist": {Flags: map[string]complete.Predictor{
				"model": predict.Something,
			}},
		},
	}
	completion.Complete("consol")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
