package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go-profile-harvester/internal/browser"
	"go-profile-harvester/internal/config"
	"go-profile-harvester/internal/control"
	"go-profile-harvester/internal/dedup"
	"go-profile-harvester/internal/extractor"
	"go-profile-harvester/internal/navigator"
	"go-profile-harvester/internal/reporter"
	"go-profile-harvester/internal/runner"
	"go-profile-harvester/internal/sink"

	"github.com/playwright-community/playwright-go"
)

func main() {
	//load config; any config problem aborts before anything else runs
	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("🔧 Config loaded. %d target profiles.", len(cfg.Targets))

	//optional telegram reporter
	var tg *reporter.TelegramReporter
	if cfg.TelegramToken != "" {
		tg, err = reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram reporter: %v", err)
		}
		log.Println("🤖 Telegram reporter initialized.")
	}

	//start/stop control: keyboard + SIGINT/SIGTERM
	ctrl := control.New(context.Background())
	go control.ListenKeyboard(ctrl)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("🛑 Stop requested by signal.")
		ctrl.Stop()
	}()

	log.Println("🚀 Starting profile harvester...")

	//browser launch failure is unrecoverable: abort with no output file
	pwManager, err := browser.NewPlaywright(cfg.Headful)
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	defer pwManager.Close()

	//load session cookies (optional)
	var cookies []playwright.OptionalCookie
	cookieFile := filepath.Join(cfg.CookiesPath, "cookies.json")
	if loaded, err := browser.LoadCookies(cookieFile); err != nil {
		log.Printf("⚠️ Could not load cookies from %s: %v. Continuing without session.", cookieFile, err)
	} else {
		log.Printf("🍪 Loaded %d cookies", len(loaded))
		cookies = loaded
	}

	browserCtx, err := pwManager.NewContext(cookies)
	if err != nil {
		log.Fatalf("❌ Failed to create browser context: %v", err)
	}
	log.Println("✅ Browser initialized successfully!")

	//skip recently harvested profiles when configured
	targets := cfg.Targets
	var cache *dedup.ProfileCache
	if cfg.SkipSeen {
		cache = dedup.NewProfileCache(cfg.CachePath)
		var fresh []string
		for _, t := range targets {
			if cache.IsSeen(t) {
				log.Printf("⏭️ Already harvested recently, skipping: %s", t)
				continue
			}
			fresh = append(fresh, t)
		}
		targets = fresh
	}
	if len(targets) == 0 {
		log.Println("ℹ️ Nothing to do: every target was harvested recently.")
		return
	}

	if cfg.WaitForStart {
		log.Println("⏸️ Waiting for start signal...")
		if err := ctrl.WaitStart(); err != nil {
			log.Println("🛑 Stopped before start. Nothing written.")
			return
		}
	}

	//run extraction, strictly sequentially
	r := runner.New(navigator.New(browserCtx), cfg, extractor.LogObserver{})
	result := r.Run(ctrl.Context(), targets)

	log.Printf("📦 Run finished: %d profiles, %d records, %d failed",
		result.ProfileCount(), result.TotalRecords(), result.Failed())

	//always emit whatever partial result the run produced
	if err := sink.WriteJSON(cfg.OutputJSON, result); err != nil {
		log.Printf("⚠️ %v", err)
	}
	if cfg.OutputExcel != "" {
		if err := sink.WriteExcel(cfg.OutputExcel, result); err != nil {
			log.Printf("⚠️ %v", err)
		}
	}

	if cache != nil {
		var done []string
		for _, t := range result.Results {
			if t.Success {
				done = append(done, t.ProfileURL)
			}
		}
		cache.Add(done)
		log.Printf("💾 Marked %d profiles as harvested", len(done))
	}

	if err := tg.SendSummary(result); err != nil {
		log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
	}

	log.Println("🏁 Execution finished.")
}
