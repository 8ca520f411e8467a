package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/seblgr/positions/cmd"
)

func main() {
	// shell completion; exits on its own when invoked by the shell.
	completion().Complete("pmg")

	// optional .env next to the data files, for PMG_* defaults.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	csvFiles := predict.Files("*.csv")
	targetFiles := predict.Files("*.jsonl")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"merge": {
				Flags: map[string]complete.Predictor{
					"o":       csvFiles,
					"targets": targetFiles,
				},
				Args: csvFiles,
			},
			"report": {
				Flags: map[string]complete.Predictor{
					"targets": targetFiles,
				},
				Args: csvFiles,
			},
			"check": {Args: targetFiles},
			"topic": {Args: predict.Set{"readme", "formats", "symbols", "merging", "targets"}},
		},
	}
}
