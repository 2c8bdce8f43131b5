package main

import "simaudit/cmd"

func main() {
	cmd.Execute()
}
