package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	yieldd "github.com/iov-one/yieldweave/cmd/yieldd/app"
	"github.com/iov-one/yieldweave/commands"
	"github.com/iov-one/yieldweave/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".yieldd")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("yieldd")
	fmt.Println("          Yield accrual ledger node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("validate  Check the app state of genesis files")
	fmt.Println("testgen   Write example encodings to a directory")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.yieldd")`)
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "yield")

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(yieldd.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(yieldd.GenerateApp, logger, *varHome, rest)
	case "validate":
		err = server.ValidateGenesis(yieldd.Initializers(), rest)
	case "testgen":
		err = commands.TestGenCmd(yieldd.Examples(), rest)
	case "version":
		fmt.Println(yieldd.Version)
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
