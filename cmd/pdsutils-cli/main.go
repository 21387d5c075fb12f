package main

import "pdsutils/cmd/pdsutils-cli/cmd"

func main() {
	cmd.Execute()
}
