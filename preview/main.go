package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/primemeridian/ogimage/internal/app"
	"github.com/primemeridian/ogimage/internal/config"
	"github.com/primemeridian/ogimage/internal/state"
	"github.com/primemeridian/ogimage/internal/system"
	"github.com/primemeridian/ogimage/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable permissive CORS; also configurable via "+web.EnvDevMode)
	publicURL := flag.String("public-url", defaults.PublicURL, "URL encoded into /qr.png; also configurable via "+web.EnvPublicURL)
	staticDir := flag.String("static-dir", "", "serve this directory at / instead of the embedded preview page")
	verbose := flag.Bool("v", cfg.Debug, "log renders to stderr")
	flag.Parse()

	if err := system.RedirectStdIO(cfg.StdioLog); err != nil {
		fmt.Println("stdio log redirect error:", err)
	}

	var logger app.Logger = app.NoopLogger{}
	if *verbose {
		logger = app.NewFileLogger(os.Stderr)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := state.NewStore()
	generator := app.New(cfg, store)
	generator.Logger = logger

	serverCfg := web.ServerConfig{
		ListenAddr:     *listenAddr,
		DevMode:        *devMode,
		PublicURL:      strings.TrimSpace(*publicURL),
		AllowedOrigins: defaults.AllowedOrigins,
	}
	server := web.NewHTTPServer(serverCfg)
	server.Handler = web.NewPreviewHandler(serverCfg, *staticDir, web.PreviewDeps{
		Renderer:  generator,
		Store:     store,
		PublicURL: serverCfg.PublicURL,
	})

	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}

	fmt.Println("OG image preview listening on", server.Addr)
	fmt.Println("Card: http://" + displayAddr(server.Addr) + "/og.png")

	<-processCtx.Done()
	_ = server.Stop()
}

func displayAddr(addr string) string {
	// Best-effort for display; don't attempt full URL parsing here.
	if strings.HasPrefix(addr, ":") {
		return "127.0.0.1" + addr
	}
	if strings.HasPrefix(addr, "[::]:") {
		return "127.0.0.1" + strings.TrimPrefix(addr, "[::]")
	}
	if addr == "" {
		return "127.0.0.1:8080"
	}
	return addr
}
