package main

import "mediaseed/cmd"

func main() {
	cmd.Execute()
}
