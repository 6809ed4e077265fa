package main

import (
	"github.com/gitchdev/gitch-go/cmd"
)

func main() {
	cmd.Run()
}
