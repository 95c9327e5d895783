package eeg

import (
	"errors"
	"testing"

	"github.com/nerrad567/lexi-control/internal/infrastructure/config"
)

func TestSendCommand_Start(t *testing.T) {
	vendor := newFakeVendor(t, nil)

	res, err := vendor.client().SendCommand(t.Context(), "asr_a", ActionStart)
	if err != nil {
		t.Fatalf("SendCommand() error = %v", err)
	}

	if !res.OK {
		t.Errorf("SendCommand() OK = false, message = %q", res.Message)
	}
	if res.Message != "Lexi Live started ✅" {
		t.Errorf("Message = %q, want start confirmation", res.Message)
	}
	if got := vendor.lastCmd.Load(); got != "asr_a/turn_on" {
		t.Errorf("vendor saw %v, want asr_a/turn_on", got)
	}
}

func TestSendCommand_Stop(t *testing.T) {
	vendor := newFakeVendor(t, nil)

	res, err := vendor.client().SendCommand(t.Context(), "asr_a", ActionStop)
	if err != nil {
		t.Fatalf("SendCommand() error = %v", err)
	}

	if !res.OK {
		t.Errorf("SendCommand() OK = false, message = %q", res.Message)
	}
	if res.Message != "Lexi Live stopped ⛔" {
		t.Errorf("Message = %q, want stop confirmation", res.Message)
	}
	if got := vendor.lastCmd.Load(); got != "asr_a/turn_off" {
		t.Errorf("vendor saw %v, want asr_a/turn_off", got)
	}
}

func TestSendCommand_InvalidAction(t *testing.T) {
	vendor := newFakeVendor(t, nil)

	_, err := vendor.client().SendCommand(t.Context(), "asr_a", Action("reboot"))
	if !errors.Is(err, ErrInvalidAction) {
		t.Errorf("SendCommand() error = %v, want ErrInvalidAction", err)
	}
	if vendor.cmdCalls.Load() != 0 {
		t.Error("invalid action must not reach the vendor")
	}
}

func TestSendCommand_NotConfigured(t *testing.T) {
	c := NewClient(config.VendorConfig{ControlBase: "http://127.0.0.1:0"})

	_, err := c.SendCommand(t.Context(), "asr_a", ActionStart)
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("SendCommand() error = %v, want ErrNotConfigured", err)
	}
}

func TestSendCommand_TransportFailure(t *testing.T) {
	// A closed server yields a connection error: recoverable, not an error
	// return, no panic.
	vendor := newFakeVendor(t, nil)
	url := vendor.srv.URL
	vendor.srv.Close()

	c := NewClient(config.VendorConfig{
		ControlBase:    url,
		APIKey:         "test-key",
		TimeoutSeconds: 1,
	})

	res, err := c.SendCommand(t.Context(), "asr_a", ActionStart)
	if err != nil {
		t.Fatalf("SendCommand() error = %v, want nil for transport failure", err)
	}
	if res.OK {
		t.Error("SendCommand() OK = true for transport failure")
	}
	if res.Message == "" {
		t.Error("transport failure must carry a human-readable message")
	}
}

func TestSendCommand_VendorRejection(t *testing.T) {
	vendor := newFakeVendor(t, nil)
	vendor.rejectCmd.Store(true)

	res, err := vendor.client().SendCommand(t.Context(), "asr_a", ActionStop)
	if err != nil {
		t.Fatalf("SendCommand() error = %v, want nil for vendor rejection", err)
	}
	if res.OK {
		t.Error("SendCommand() OK = true for vendor 403")
	}
	if res.Message != "Request failed (403)" {
		t.Errorf("Message = %q, want status in diagnostics", res.Message)
	}
}
