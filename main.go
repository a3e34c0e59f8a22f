package main

import "github.com/kozaktomas/immich-frame/cmd"

func main() {
	cmd.Execute()
}
