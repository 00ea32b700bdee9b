package main

import (
	"github.com/http-server-bench/benchtools/cmd/benchtools/cmd"
)

func main() {
	cmd.Execute()
}
