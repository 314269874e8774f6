package main

import (
	"github.com/quadro-app/quadro/internal/cli"
)

func main() {
	cli.Execute()
}
