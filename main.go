package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"smuggler/identity"
	"smuggler/server"
	"smuggler/transport"

	"go.uber.org/zap"
)

// Smuggler 入口：加载配置，启动传输层、管理接口与服务器循环
func main() {
	var cfgPath, addr string
	flag.StringVar(&cfgPath, "config", "", "path to a YAML config file")
	flag.StringVar(&addr, "addr", "", "override server.addr, e.g. :7775")
	flag.Parse()

	cfg, err := server.LoadConfig(cfgPath)
	if err != nil {
		panic(err)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if err := server.InitLogger(cfg.Log); err != nil {
		panic(err)
	}
	defer server.SyncLogger()
	log := server.Log

	var store server.IdentityStore
	var restored map[string]int32
	if cfg.Identity.Enabled {
		s, err := identity.OpenSQLite(cfg.Identity.SQLitePath, log.Named("identity"))
		if err != nil {
			log.Fatalf("identity store: %v", err)
		}
		defer func() {
			if err := s.Close(); err != nil {
				log.Warnw("identity store close", "err", err)
			}
		}()
		if restored, err = s.LoadAll(); err != nil {
			log.Fatalf("identity load: %v", err)
		}
		store = s
	}

	tr, err := openTransport(cfg, log.Named("transport"))
	if err != nil {
		log.Fatalf("transport: %v", err)
	}

	srv, err := server.NewServer(cfg, tr, store)
	if err != nil {
		log.Fatalf("server: %v", err)
	}
	srv.Sessions().Restore(restored)

	admin := &http.Server{Addr: cfg.Admin.Addr, Handler: srv.AdminHandler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Infof("admin listening on %s", cfg.Admin.Addr)
		if err := admin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("admin listen: %v", err)
		}
	}()

	// 优雅退出（Ctrl+C）
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("Smuggler server started", "transport", cfg.Server.Transport, "addr", cfg.Server.Addr,
		"tick_rate", cfg.Loop.TickRate, "restored_identities", len(restored))
	if err := srv.Run(ctx); err != nil {
		log.Warnw("transport close", "err", err)
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = admin.Shutdown(shutdownCtx)
}

func openTransport(cfg server.Config, log *zap.SugaredLogger) (transport.Transport, error) {
	switch cfg.Server.Transport {
	case "websocket":
		return transport.ListenWebSocket(cfg.Server.Addr, transport.WebSocketConfig{
			Path:       cfg.Server.WebSocketPath,
			MaxClients: cfg.Server.MaxClients,
			Logger:     log,
		})
	default:
		return transport.ListenQUIC(cfg.Server.Addr, transport.QUICConfig{
			MaxClients: cfg.Server.MaxClients,
			CertFile:   cfg.Server.CertFile,
			KeyFile:    cfg.Server.KeyFile,
			Logger:     log,
		})
	}
}
