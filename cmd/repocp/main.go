package main

import (
	"github.com/mobileinf/repocp/cmd/repocp/cmd"
)

func main() {
	cmd.Execute(cmd.InitializeCommands())
}
