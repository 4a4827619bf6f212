package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/kathmanduwallet/wallet/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI surface for shell completion.
// Run "COMP_INSTALL=1 kw" once to install it.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"wallet-dir": predict.Dirs("*"),
		"account":    predict.Something,
		"store":      predict.Set{"dir", "pg"},
	},
	Sub: map[string]*complete.Command{
		"deposit": {Flags: map[string]complete.Predictor{
			"amount": predict.Something,
			"source": predict.Something,
		}},
		"withdraw": {Flags: map[string]complete.Predictor{
			"amount": predict.Something,
			"to":     predict.Something,
		}},
		"transfer": {Flags: map[string]complete.Predictor{
			"to":     predict.Something,
			"amount": predict.Something,
		}},
		"paybill": {Flags: map[string]complete.Predictor{
			"service": predict.Something,
			"name":    predict.Something,
			"amount":  predict.Something,
		}},
		"balance": {},
		"history": {Flags: map[string]complete.Predictor{
			"head": predict.Something,
			"tail": predict.Something,
		}},
		"audit": {Args: predict.Files("*")},
		"recipients": {Flags: map[string]complete.Predictor{
			"limit": predict.Something,
			"skip":  predict.Something,
		}},
		"topic":  {Args: predict.Set{"wallet", "audit", "recipients", "*"}},
		"assist": {},
	},
}

func main() {
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
