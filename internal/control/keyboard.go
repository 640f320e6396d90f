package control

import (
	"log"
	"os"

	"golang.org/x/term"
)

// ListenKeyboard reads single keypresses from stdin in raw mode:
// Enter or 's' opens the start gate, 'q' or Ctrl-C sets the stop signal.
// When stdin is not a terminal the gate opens immediately, so piped and
// scheduled runs start without interaction.
//
// Call in a goroutine; it returns when the run stops or stdin closes, and
// restores the terminal state before returning.
func ListenKeyboard(c *Controller) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		c.Start()
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Printf("⚠️ Could not switch terminal to raw mode: %v. Starting immediately.", err)
		c.Start()
		return
	}
	defer term.Restore(fd, oldState)

	log.Println("⌨️ Press Enter or 's' to start, 'q' to stop.")

	buf := make([]byte, 1)
	for {
		if c.Stopped() {
			return
		}
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		switch buf[0] {
		case '\r', '\n', 's', 'S':
			c.Start()
		case 'q', 'Q', 3: // 3 = Ctrl-C in raw mode
			log.Println("🛑 Stop requested from keyboard.")
			c.Stop()
			return
		}
	}
}
