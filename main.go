/*
Crystal Room populates the VR sample scene (room, crystal lattice and
lights) on the headless renderer. With -watch it keeps running and
repopulates whenever the configuration file changes.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/crystalroom/engine"
	"github.com/spaghettifunk/crystalroom/engine/assets"
	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml configuration file")
	exportDir := flag.String("export", "", "directory to write the builtin textures to as PNG")
	watch := flag.Bool("watch", false, "keep running and repopulate when the config file changes")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	cfg, err := assets.LoadConfig(*configPath)
	if err != nil {
		core.LogFatal("failed to load config: %s", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *exportDir != "" {
		cfg.Export.Dir = *exportDir
	}
	if *watch && *configPath == "" {
		core.LogFatal("-watch needs -config")
	}

	rd, err := testbed.NewRoomDemo(cfg, *configPath, *watch)
	if err != nil {
		core.LogFatal("failed to create room demo: %s", err)
	}

	e, err := engine.New(rd.Game)
	if err != nil {
		core.LogFatal("failed to create engine: %s", err)
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal("failed to initialize engine: %s", err)
	}

	if !*watch {
		if err := e.Shutdown(); err != nil {
			core.LogFatal("shutdown failed: %s", err)
		}
		return
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		e.Quit()
	}()

	// run engine
	if err := e.Run(); err != nil {
		core.LogFatal("engine stopped: %s", err)
	}
	if err := e.Shutdown(); err != nil {
		core.LogFatal("shutdown failed: %s", err)
	}
}
