package main

import "github.com/jsphweid/transposer/cmd"

func main() {
	cmd.Execute()
}
