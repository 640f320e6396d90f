// Page navigation collaborator: opens a profile URL on the shared browser
// context, lets the content settle, and hands the engine an opaque DOM
// scope. The engine never navigates; it only consumes ready scopes.
package navigator

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/playwright-community/playwright-go"

	"go-profile-harvester/internal/dom"
	"go-profile-harvester/utils"
)

type Navigator struct {
	browserCtx playwright.BrowserContext
	debugger   *utils.ScreenShotDebugger
}

func New(browserCtx playwright.BrowserContext) *Navigator {
	return &Navigator{
		browserCtx: browserCtx,
		debugger:   utils.NewScreenShotDebugger(),
	}
}

// Open navigates a fresh page to the profile URL, waits out the content
// settle delay, and returns the page scope plus a close func. Rendering
// is externally driven, so the settle is a fixed-duration pause, not an
// event wait.
func (n *Navigator) Open(ctx context.Context, profileURL string) (dom.Node, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	page, err := n.browserCtx.NewPage()
	if err != nil {
		return nil, nil, fmt.Errorf("navigator: new page: %w", err)
	}
	closePage := func() { page.Close() }

	if _, err := page.Goto(profileURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		closePage()
		return nil, nil, fmt.Errorf("navigator: goto %s: %w", profileURL, err)
	}

	// Let externally-driven rendering finish and pull lazy sections in.
	utils.RandomDelay(2000, 4000)
	utils.MouseJiggle(page)
	utils.SmoothScroll(page)
	utils.RandomDelay(1000, 2000)

	if blocked, reason := n.blocked(page); blocked {
		n.debugger.CaptureAndLog(page, profileURL, fmt.Sprintf("🚨 Blocked on %s: %s", profileURL, reason))
		closePage()
		return nil, nil, fmt.Errorf("navigator: %s: %s", profileURL, reason)
	}

	log.Printf("  🌐 Page ready: %s", profileURL)
	return dom.NewPageScope(page), closePage, nil
}

// blocked detects auth walls and bot challenges from the page title and
// well-known wall markers.
func (n *Navigator) blocked(page playwright.Page) (bool, string) {
	title, _ := page.Title()
	for _, marker := range []string{"Sign Up", "Sign In", "Attention Required", "Just a moment"} {
		if strings.Contains(title, marker) {
			return true, fmt.Sprintf("challenge page %q", title)
		}
	}

	count, _ := page.Locator(".authwall, .captcha, [data-captcha]").Count()
	if count > 0 {
		return true, "auth wall or captcha present"
	}
	return false, ""
}
