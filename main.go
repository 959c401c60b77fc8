package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/orbitmarks/orbit/internal/board"
	"github.com/orbitmarks/orbit/internal/config"
	"github.com/orbitmarks/orbit/internal/export"
	"github.com/orbitmarks/orbit/internal/logger"
	"github.com/orbitmarks/orbit/internal/storage"
	"github.com/orbitmarks/orbit/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.orbitmarks.orbit"
	AppName = "Orbit"
)

func main() {
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewSpaceTheme())

	settings := config.NewSettings(myApp)

	// an optional YAML config file overrides stored preferences
	fileCfg, err := config.LoadFile("")
	if err != nil {
		fmt.Printf("config file ignored: %v\n", err)
	} else {
		fileCfg.Apply(settings)
	}

	log := logger.New(settings.GetLogLevel(), fileCfg.PrettyLog)
	defer log.Sync()
	log.Info("starting", logger.String("app", AppName), logger.String("version", version))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	store := storage.NewFileStore(settings.GetBoardFile())
	boardSvc := board.NewService(store, log)
	if err := boardSvc.Load(); err != nil {
		// fail closed on a malformed board file rather than clobbering it
		log.Error("board load failed", logger.Error(err), logger.String("path", store.Path()))
		fmt.Printf("cannot load board file %s: %v\n", store.Path(), err)
		return
	}
	snapSvc := export.NewService(log)

	rootUI := ui.NewRootUI(myWindow, myApp, boardSvc, snapSvc, log)

	myWindow.SetCloseIntercept(func() {
		rootUI.PersistView()
		myWindow.Close()
	})

	myWindow.ShowAndRun()
}
