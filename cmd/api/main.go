package main

import (
	"go.uber.org/fx"

	appfx "github.com/Alex2003763/Fintracker-sub002/internal/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
