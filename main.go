package main

import "github.com/gestorfin/dre-management/cmd"

func main() {
	cmd.Execute()
}
