package main

import "github.com/jsphweid/theorybox/cmd"

func main() {
	cmd.Execute()
}
