// cmd/paperchunk/main.go
package main

import (
	"github.com/mwiater/paperchunk/internal/cli"
)

func main() {
	cli.Execute()
}
