package main

import (
	"fmt"
	"os"

	"github.com/fjacquet/fincontroller/cmd/add"
	"github.com/fjacquet/fincontroller/cmd/export"
	"github.com/fjacquet/fincontroller/cmd/importer"
	"github.com/fjacquet/fincontroller/cmd/list"
	"github.com/fjacquet/fincontroller/cmd/remove"
	"github.com/fjacquet/fincontroller/cmd/root"
	"github.com/fjacquet/fincontroller/cmd/show"
	"github.com/fjacquet/fincontroller/cmd/stats"
	"github.com/fjacquet/fincontroller/cmd/update"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(show.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(update.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importer.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
