package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/collisiondetect/assets"
	"github.com/milk9111/collisiondetect/common"
	"github.com/milk9111/collisiondetect/scene"
	"go.uber.org/zap"
)

const banner = "Collision Detection Test\n\nUse arrows to move the first character, WASD for the other"

func main() {
	sceneName := flag.String("scene", scene.DefaultName, "scene file (YAML), falls back to the embedded scene of the same name")
	watch := flag.Bool("watch", false, "reload the scene when it or its textures change")
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	flag.Parse()

	logger, err := common.NewLogger(*debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	fmt.Println(banner)

	s, err := scene.Load(*sceneName)
	if err != nil {
		logger.Fatal("load scene", zap.String("scene", *sceneName), zap.Error(err))
	}

	manager, err := BuildManager(s, cachedTextures(assets.NewTextures()))
	if err != nil {
		logger.Fatal("load textures", zap.Error(err))
	}

	game := NewGame(s, manager, logger, os.Stdout)
	game.debug = *debug

	if *watch {
		dirs := watchDirs(*sceneName)
		w, err := scene.NewWatcher(dirs...)
		if err != nil {
			logger.Fatal("watch scene", zap.Strings("dirs", dirs), zap.Error(err))
		}
		defer w.Close()
		game.Watch(*sceneName, w)
		logger.Info("watching scene", zap.Strings("dirs", dirs))
	}

	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowTitle(s.Window.Title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}
