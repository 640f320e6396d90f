package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ScreenShotDebugger handles debug screenshots
type ScreenShotDebugger struct {
	outputDir string
}

func NewScreenShotDebugger() *ScreenShotDebugger {
	dir := filepath.Join(".", "logs", "screenshots")
	os.MkdirAll(dir, 0755)
	return &ScreenShotDebugger{
		outputDir: dir,
	}
}

func (s *ScreenShotDebugger) CaptureAndLog(page playwright.Page, name, message string) error {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", Slugify(name), timestamp)
	filepath := filepath.Join(s.outputDir, filename)
	log.Printf("📸 %s", message)

	//Take screenshot
	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(filepath),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return err
	}

	log.Printf("   Screenshot saved: %s", filepath)
	return nil
}

// Slugify turns a profile URL or name into a filesystem-safe token:
// diacritics stripped, lowercased, anything non-alphanumeric collapsed
// into single dashes.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, _ := transform.String(t, s)
	plain = strings.ToLower(plain)

	var b strings.Builder
	dash := false
	for _, r := range plain {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
