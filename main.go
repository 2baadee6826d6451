package main

import (
	"os"

	"github.com/AayushY02/Parking-MapAI/cmd"
	"github.com/AayushY02/Parking-MapAI/infra/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.New("main").Errorf("%v", err)
		os.Exit(1)
	}
}
