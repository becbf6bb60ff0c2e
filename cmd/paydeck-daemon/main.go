package main

import (
	"fmt"
	"os"

	"github.com/paydeck/paydeck/config"
	"github.com/paydeck/paydeck/workers/daemons"
)

func CreateWorker(id string) daemons.Worker {
	switch id {
	case "cron_job":
		return daemons.NewCronJob()
	default:
		return nil
	}
}

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	ARVG := os.Args[1:]

	for _, id := range ARVG {
		worker := CreateWorker(id)
		if worker == nil {
			fmt.Println("Unknown paydeck-daemon: " + id)
			continue
		}

		fmt.Println("Start paydeck-daemon: " + id)
		worker.Start()
	}
}
