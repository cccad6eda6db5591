package main

import "github.com/parsemill/gramdeps/cmd"

func main() {
	cmd.Execute()
}
