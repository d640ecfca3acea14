// Command navcheck reconciles an ETF's last price with the value of its
// holdings. See `navcheck topic`.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/etfnav/cmd"
	"github.com/etnz/etfnav/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// exits when invoked by the shell to complete the command line.
	completion(commander).Complete("navcheck")

	flag.Parse()
	cmd.Init()

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is one of the commander's commands.
func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}

// completion describes the command line for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	topics, _ := docs.GetAllTopics()

	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"check": {
				Flags: map[string]complete.Predictor{"n": predict.Something, "o": predict.Files("*.json")},
				Args:  predict.Something,
			},
			"holdings": {
				Flags: map[string]complete.Predictor{"n": predict.Something, "all": predict.Nothing},
				Args:  predict.Something,
			},
			"explain": {
				Flags: map[string]complete.Predictor{"n": predict.Something, "i": predict.Nothing},
				Args:  predict.Something,
			},
			"quotes": {Args: predict.Something},
			"topic":  {Args: predict.Set(append(topics, "*"))},
		},
		Flags: map[string]complete.Predictor{},
	}

	var names []string
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		names = append(names, c.Name())
		if _, ok := root.Sub[c.Name()]; !ok {
			root.Sub[c.Name()] = &complete.Command{}
		}
	})
	root.Sub["help"].Args = predict.Set(names)

	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			root.Flags[f.Name] = predict.Nothing
		} else {
			root.Flags[f.Name] = predict.Something
		}
	})
	return root
}
