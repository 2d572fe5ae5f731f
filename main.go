package main

import "github.com/chasselife/xpnse/cmd"

func main() {
	cmd.Execute()
}
