package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"wordgame/internal/config"
	"wordgame/internal/console"
	"wordgame/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var source words.Source = words.Default(rng)
	if cfg.WordsFile != "" {
		source, err = words.FromFile(cfg.WordsFile, rng)
		if err != nil {
			logger.Fatal("load words file", zap.String("path", cfg.WordsFile), zap.Error(err))
		}
	}

	loop := console.New(source, os.Stdin, os.Stdout, logger)
	if err := loop.Run(); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
}
