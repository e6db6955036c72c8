package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/calculator"
	"github.com/darkron008/Tip-and-hours-Calculator/internal/config"
	"github.com/darkron008/Tip-and-hours-Calculator/internal/server"
	"github.com/darkron008/Tip-and-hours-Calculator/internal/util"
)

var (
	port    = flag.Int("port", 0, "server port (config.toml wins when it sets one explicitly)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides the config file)")
)

func main() {
	// Quick calculator subcommands skip the server entirely.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "tip", "pay":
			runCalcCommand(os.Args[1], os.Args[2:])
			return
		}
	}

	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Tip & Hours Calculator")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// Command-line flags override the defaults but not an explicit file.
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("Failed to create data directory: %v", err)
	} else {
		fmt.Printf("Data directory: %s\n", dir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Starting server on port %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("Opening browser: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("Could not open a browser, visit %s manually\n", url)
		}
	} else {
		fmt.Printf("Development mode: visit %s\n", url)
	}

	fmt.Println("\nPress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	if err := srv.Close(); err != nil {
		log.Printf("Failed to close store: %v", err)
	}
}

// runCalcCommand handles "tipcalc tip <amount> <percent>" and
// "tipcalc pay <hours> <rate>".
func runCalcCommand(name string, args []string) {
	if len(args) != 2 {
		switch name {
		case "tip":
			fmt.Fprintln(os.Stderr, "usage: tipcalc tip <amount> <percent>")
		case "pay":
			fmt.Fprintln(os.Stderr, "usage: tipcalc pay <hours> <rate>")
		}
		os.Exit(2)
	}

	a, err := decimal.NewFromString(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid number %q\n", args[0])
		os.Exit(2)
	}
	b, err := decimal.NewFromString(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid number %q\n", args[1])
		os.Exit(2)
	}

	switch name {
	case "tip":
		tip, err := calculator.Tip(a, b)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		total, _ := calculator.Total(a, b)
		fmt.Printf("Tip:   %s\n", tip.StringFixed(2))
		fmt.Printf("Total: %s\n", total.StringFixed(2))
	case "pay":
		pay, err := calculator.Pay(a, b)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Pay: %s\n", pay.StringFixed(2))
	}
}
