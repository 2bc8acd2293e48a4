package main

import (
	"github.com/astralfront/supremacy/internal/cli"
)

func main() {
	cli.Execute()
}
