package eeg

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Action is a control command recognised by the vendor API.
type Action string

const (
	// ActionStart turns an instance on.
	ActionStart Action = "turn_on"

	// ActionStop turns an instance off.
	ActionStop Action = "turn_off"
)

// CommandResult is the outcome of a control command.
//
// OK distinguishes success from the two recoverable failure classes
// (transport failure and vendor rejection); Message is always safe to show
// to the operator.
type CommandResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// SendCommand issues a single synchronous start/stop command for an instance.
//
// Failure taxonomy:
//   - unrecognised action: ErrInvalidAction (caller programming error)
//   - missing API key: ErrNotConfigured (server misconfiguration)
//   - transport failure or non-success response: OK=false with a
//     human-readable message and a nil error
//
// Commands are never retried; the vendor's own idempotency guarantees are
// the only ones in effect.
func (c *Client) SendCommand(ctx context.Context, instanceID string, action Action) (CommandResult, error) {
	if action != ActionStart && action != ActionStop {
		return CommandResult{}, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	if !c.Configured() {
		return CommandResult{}, ErrNotConfigured
	}

	url := fmt.Sprintf("%s/instances/%s/%s", c.controlBase, instanceID, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader("{}"))
	if err != nil {
		return CommandResult{OK: false, Message: fmt.Sprintf("Request error: %v", err)}, nil
	}
	req.SetBasicAuth(apiUsername, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("command transport failure", "instance", instanceID, "action", action, "error", err)
		return CommandResult{OK: false, Message: fmt.Sprintf("Request error: %v", err)}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("command rejected", "instance", instanceID, "action", action, "status", resp.StatusCode)
		return CommandResult{OK: false, Message: fmt.Sprintf("Request failed (%d)", resp.StatusCode)}, nil
	}

	c.logger.Info("command accepted", "instance", instanceID, "action", action)
	if action == ActionStart {
		return CommandResult{OK: true, Message: "Lexi Live started ✅"}, nil
	}
	return CommandResult{OK: true, Message: "Lexi Live stopped ⛔"}, nil
}
