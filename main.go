package main

import (
	"fmt"
	"os"

	"alshakib/logcompat/cmd/pretty"
	"alshakib/logcompat/cmd/root"
	"alshakib/logcompat/cmd/send"
	"alshakib/logcompat/cmd/showconfig"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(send.Cmd)
	root.Cmd.AddCommand(pretty.Cmd)
	root.Cmd.AddCommand(showconfig.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
