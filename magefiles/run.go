//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Populates the scene once and exports the builtin textures. Set
// ROOM_CONFIG to use a configuration file and ROOM_EXPORT to change the
// export directory (default textures/).
func (Run) Demo() error {
	mg.Deps(Build.Binary)

	args := []string{"-export", envOr("ROOM_EXPORT", "textures")}
	if cfg := os.Getenv("ROOM_CONFIG"); cfg != "" {
		args = append(args, "-config", cfg)
	}
	fmt.Println("Run crystal room...")
	if _, err := executeCmd("bin/crystalroom", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
