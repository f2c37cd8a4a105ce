package main

import "github.com/harini-kv/yt-warehouse/cmd"

func main() {
	cmd.Execute()
}
