package main

import (
	"fmt"

	"github.com/paydeck/paydeck/config"
	"github.com/paydeck/paydeck/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	r := routes.SetupRouter()
	r.Listen(":3000")
}
