package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Notifier sends system notifications.
type Notifier struct {
	Enabled bool
}

// Send sends a system notification.
// On macOS, uses osascript to display notifications.
// On other platforms, this is a no-op.
func (n *Notifier) Send(title, message string) error {
	if !n.Enabled {
		return nil
	}

	if runtime.GOOS != "darwin" {
		// Only macOS supported for now
		return nil
	}

	return sendMacOSNotification(title, message)
}

// sendMacOSNotification uses osascript to display a notification.
func sendMacOSNotification(title, message string) error {
	// Escape quotes in title and message
	title = strings.ReplaceAll(title, `"`, `\"`)
	message = strings.ReplaceAll(message, `"`, `\"`)

	script := fmt.Sprintf(`display notification "%s" with title "%s"`, message, title)
	cmd := exec.Command("osascript", "-e", script)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	return nil
}

// FormatPlanReady formats a plan completion notification message.
func FormatPlanReady(goal string, taskCount int, method string) (title, message string) {
	title = "Task Planner: Plan Ready"
	if len(goal) > 60 {
		goal = goal[:57] + "..."
	}
	message = fmt.Sprintf("%s: %d tasks (%s)", goal, taskCount, method)
	return title, message
}
