package main

import (
	"context"
	"log"

	"github.com/skillbridge/skillbridge/internal/client/cli"
	"github.com/skillbridge/skillbridge/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
