package main

import (
	"fmt"
	"log"
	"os"

	"go-profile-harvester/internal/config"
)

func main() {
	path := "configs/config.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Targets: %d\n", len(cfg.Targets))
	if cfg.Experience != nil {
		fmt.Printf("   Experience item selector: %s\n", cfg.Experience.ItemSelector)
	}
	if cfg.Education != nil {
		fmt.Printf("   Education item selector: %s\n", cfg.Education.ItemSelector)
	}
	fmt.Printf("   Output JSON: %s\n", cfg.OutputJSON)
	fmt.Printf("   Output Excel: %s\n", cfg.OutputExcel)
	fmt.Printf("   Cookies Path: %s\n", cfg.CookiesPath)
	fmt.Printf("   Skip seen: %v, Wait for start: %v\n", cfg.SkipSeen, cfg.WaitForStart)
}
