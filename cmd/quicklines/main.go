package main

import "quicklines/cmd/quicklines/cmd"

func main() {
	cmd.Execute()
}
