package main

import (
	"go.uber.org/zap"

	"github.com/Chetanya2001/zip-mobility-solutions-sub000/app"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/config"
	"github.com/Chetanya2001/zip-mobility-solutions-sub000/store"
)

func main() {
	a := app.App{Auth: store.NewAuthStore()}
	a.Config = *config.New()

	a.Initialize() //initialize backend clients and stores

	zap.S().Infow("zipdrive client core is up and running",
		"base_url", a.Config.BaseURL,
		"environment", a.Config.Environment,
	)
}
