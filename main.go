package main

import (
	"fmt"
	"os"

	"github.com/gqlc/gqldoc/cmd"
)

func main() {
	cli := cmd.NewCLI()
	if err := cli.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
