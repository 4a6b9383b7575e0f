package main

import (
	rulekitcmd "github.com/initializ/rulekit/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	rulekitcmd.SetVersionInfo(version, commit)
	rulekitcmd.Execute()
}
