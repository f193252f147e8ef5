package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BTBurke/seedrand"
	"github.com/spf13/pflag"
)

func main() {

	opts, err := seedrand.ParseCommandLine()
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("Could not parse configuration: %s\n\nUse seedrand --help for options\n", err)
		}
		os.Exit(1)
	}

	cmd, errs := seedrand.New(opts...)
	if len(errs) > 0 {
		fmt.Println("Error in config:")
		for _, e := range errs {
			fmt.Println(e)
		}
		os.Exit(1)
	}

	if err := cmd.Exec(os.Stdout); err != nil {
		fmt.Println("Draw error:", err)
		os.Exit(1)
	}

	os.Exit(0)
}
