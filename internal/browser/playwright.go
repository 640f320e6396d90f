package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0 Safari/537.36"

// PlaywrightManager owns the browser process lifecycle. The extraction
// engine only ever receives page scopes; it never closes or recreates the
// browser itself.
type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewPlaywright starts the playwright driver and launches Chromium.
// A launch failure is unrecoverable for the run.
func NewPlaywright(headful bool) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("browser: start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(!headful),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("browser: launch chromium: %w", err)
	}

	return &PlaywrightManager{pw: pw, browser: b}, nil
}

// NewContext creates a browser context with the stealth init script and
// the given session cookies applied.
func (pm *PlaywrightManager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	ctx, err := pm.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(userAgent),
		Viewport:  &playwright.Size{Width: 1366, Height: 768},
		Locale:    playwright.String("en-US"),
	})
	if err != nil {
		return nil, fmt.Errorf("browser: new context: %w", err)
	}

	if err := ctx.AddInitScript(playwright.Script{Content: playwright.String(stealthScript)}); err != nil {
		return nil, fmt.Errorf("browser: add stealth script: %w", err)
	}

	if len(cookies) > 0 {
		if err := ctx.AddCookies(cookies); err != nil {
			return nil, fmt.Errorf("browser: add cookies: %w", err)
		}
	}
	return ctx, nil
}

// Close tears down the browser and the playwright driver.
func (pm *PlaywrightManager) Close() error {
	if err := pm.browser.Close(); err != nil {
		return fmt.Errorf("browser: close: %w", err)
	}
	return pm.pw.Stop()
}
