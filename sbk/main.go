package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/ebersole/sellbook/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Optional .env next to the data files (SELLBOOK_DIR).
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	completion := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"report":   {Flags: map[string]complete.Predictor{"offset": predict.Something, "n": predict.Something}},
			"monthly":  {Flags: map[string]complete.Predictor{"y": predict.Something, "offset": predict.Something}},
			"topitems": {Flags: map[string]complete.Predictor{"n": predict.Something}},
			"import":   {Flags: map[string]complete.Predictor{"reports": predict.Dirs("*")}},
			"items":    {},
			"costs":    {},
		},
	}
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
