// Package notify sends a desktop notification when watch mode observes a new
// version. Notifications are best effort: failures are ignored and the
// feature disables itself in CI and non-interactive sessions.
package notify

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/term"
)

// Notification is a single desktop notification.
type Notification struct {
	Title   string
	Message string
}

// Sender delivers notifications to the OS notification system.
type Sender interface {
	Send(n Notification) error
	Available() bool
}

// NewSender creates a platform-specific sender: osascript on macOS,
// notify-send on Linux, a no-op elsewhere.
func NewSender() Sender {
	switch runtime.GOOS {
	case "darwin":
		return &execSender{tool: "osascript", args: func(n Notification) []string {
			script := fmt.Sprintf("display notification %q with title %q", n.Message, n.Title)
			return []string{"-e", script}
		}}
	case "linux":
		return &execSender{tool: "notify-send", args: func(n Notification) []string {
			return []string{n.Title, n.Message}
		}}
	default:
		return &noopSender{}
	}
}

type execSender struct {
	tool string
	args func(n Notification) []string
}

func (s *execSender) Send(n Notification) error {
	return exec.Command(s.tool, s.args(n)...).Run()
}

func (s *execSender) Available() bool {
	_, err := exec.LookPath(s.tool)
	return err == nil
}

type noopSender struct{}

func (s *noopSender) Send(_ Notification) error { return nil }
func (s *noopSender) Available() bool           { return false }

// Notifier gates a Sender behind environment checks.
type Notifier struct {
	sender Sender
}

// NewNotifier creates a Notifier with the platform sender.
func NewNotifier() *Notifier {
	return &Notifier{sender: NewSender()}
}

// NewNotifierWithSender creates a Notifier with a custom sender, for tests.
func NewNotifierWithSender(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

// Notify sends a notification unless the session is CI or non-interactive,
// or no notification tool is available. Delivery failures are swallowed.
func (n *Notifier) Notify(title, message string) {
	if isCI() || !isInteractive() || !n.sender.Available() {
		return
	}
	_ = n.sender.Send(Notification{Title: title, Message: message})
}

// isCI checks for common CI environment variables.
func isCI() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// isInteractive checks stdout rather than stdin because CLI tools often have
// stdin piped while stdout remains connected to the terminal.
func isInteractive() bool {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}
