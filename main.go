package main

import "github.com/JoeGouws82/nonos-boot/cmd"

func main() {
	cmd.Execute()
}
