package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"glitcharcade/config"
	"glitcharcade/desktop"
	"glitcharcade/logging"
)

// 桌面版入口（ebiten 窗口）
func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logging.Init(cfg.Log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logging.Sync()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if err := desktop.Run(cfg, seed, logging.Named("desktop")); err != nil {
		logging.Log.Errorw("desktop exited", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
