package main

import (
	"github.com/projectdiscovery/gologger"

	"freeproxy/common"
	"freeproxy/internal/runner"
)

func main() {
	opt := common.ParseOptions()

	if err := runner.New(opt); err != nil {
		gologger.Fatal().Msgf("Error! %s", err)
	}
}
