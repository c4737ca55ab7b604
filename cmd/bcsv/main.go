package main

import (
	"github.com/arloliu/bcsv/cmd/bcsv/cmd"
)

func main() {
	cmd.Execute()
}
