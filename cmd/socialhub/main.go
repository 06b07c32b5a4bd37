package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/BurntSushi/toml"
	"github.com/katelinlis/SocialHub/internal/app/apiserver"
	"github.com/sirupsen/logrus"
)

var (
	configPath string
)

func init() {
	flag.StringVar(&configPath, "config-path", "configs/socialhub.toml", "path to config file")
}

func main() {
	flag.Parse()
	config := apiserver.NewConfig()

	_, err := toml.DecodeFile(configPath, config)
	if errors.Is(err, os.ErrNotExist) {
		logrus.WithField("config_path", configPath).Warn("config file not found, using defaults")
	} else if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigs
		logrus.WithField("signal", sig.String()).Info("received signal")
		cancel()
	}()

	if err := apiserver.Start(ctx, config); err != nil {
		logrus.Fatal(err)
	}
}
