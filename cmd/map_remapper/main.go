package main

import (
	"embed"
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"go.uber.org/zap"

	"github.com/user/map_remapper_go/internal/config"
)

//go:embed all:frontend/public
var assets embed.FS

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatal("Error loading config: ", err.Error())
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal("Error creating logger: ", err.Error())
	}
	defer logger.Sync()

	app := NewApp(cfg, logger) // Defined in app.go

	err = wails.Run(&options.App{
		Title:  "Map Remapper",
		Width:  960,
		Height: 720,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 46, G: 46, B: 46, A: 255}, // #2e2e2e
		OnStartup:        app.Startup,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		logger.Fatal("Error running Wails app", zap.Error(err))
	}
}
