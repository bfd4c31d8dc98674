package main

import (
	"construction-estimator-service/internal/cli"
	"os"
)

func main() {
	command := cli.NewEstimatorCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
