package main

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/tschau-sepp/config"
	"github.com/ratel-online/tschau-sepp/database"
	"github.com/ratel-online/tschau-sepp/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.FromEnv()
	if err != nil {
		log.Error(err)
		return
	}
	var store database.Store
	if cfg.SnapshotDSN != "" {
		sqlStore, err := database.OpenStore(cfg.SnapshotDSN)
		if err != nil {
			log.Error(err)
			return
		}
		defer sqlStore.Close()
		store = sqlStore
	}
	if err := database.Init(database.NewSettings(cfg), store); err != nil {
		log.Error(err)
		return
	}
	if cfg.WSAddr != "" {
		async.Async(func() {
			log.Error(network.NewWebsocketServer(cfg.WSAddr, cfg.AuthTimeout()).Serve())
		})
	}
	log.Error(network.NewTcpServer(cfg.TCPAddr, cfg.AuthTimeout()).Serve())
}
