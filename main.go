package main

import "github.com/ThomasBonnelye/invader-comparator/cmd"

func main() {
	cmd.Execute()
}
