package eeg

import (
	"testing"

	"github.com/nerrad567/lexi-control/internal/infrastructure/config"
)

func TestStatus_Found(t *testing.T) {
	vendor := newFakeVendor(t, []rawInstance{
		{InstanceID: "asr_a", State: "ON", Settings: rawSettings{Name: "Studio A"}},
		{InstanceID: "asr_b", State: "OFF", Settings: rawSettings{Name: "Studio B"}},
	})

	st := vendor.client().Status(t.Context(), "asr_b")

	if st.Name != "Studio B" {
		t.Errorf("Name = %q, want %q", st.Name, "Studio B")
	}
	if st.State != "OFF" {
		t.Errorf("State = %q, want %q", st.State, "OFF")
	}
	if st.Badge != BadgeRed {
		t.Errorf("Badge = %v, want %v", st.Badge, BadgeRed)
	}
}

func TestStatus_NotFound(t *testing.T) {
	vendor := newFakeVendor(t, []rawInstance{
		{InstanceID: "asr_a", State: "ON", Settings: rawSettings{Name: "Studio A"}},
	})

	st := vendor.client().Status(t.Context(), "asr_missing")

	if st.Name != UnknownName {
		t.Errorf("Name = %q, want placeholder", st.Name)
	}
	if st.State != UnknownState {
		t.Errorf("State = %q, want placeholder", st.State)
	}
	if st.Badge != BadgeGrey {
		t.Errorf("Badge = %v, want %v", st.Badge, BadgeGrey)
	}
}

func TestStatus_VendorFailure(t *testing.T) {
	vendor := newFakeVendor(t, nil)
	vendor.failList.Store(true)

	st := vendor.client().Status(t.Context(), "asr_a")

	if st.Name != UnknownName || st.State != UnknownState {
		t.Errorf("Status() = %+v, want placeholders on failure", st)
	}
}

func TestStatus_NotConfigured(t *testing.T) {
	c := NewClient(config.VendorConfig{ControlBase: "http://127.0.0.1:0"})

	st := c.Status(t.Context(), "asr_a")
	if st.State != UnknownState {
		t.Errorf("State = %q, want placeholder without API key", st.State)
	}
}

func TestStatus_EmptyFields(t *testing.T) {
	vendor := newFakeVendor(t, []rawInstance{
		{InstanceID: "asr_a"},
	})

	st := vendor.client().Status(t.Context(), "asr_a")

	if st.Name != UnknownName {
		t.Errorf("Name = %q, want placeholder for empty settings name", st.Name)
	}
	if st.State != UnknownState {
		t.Errorf("State = %q, want placeholder for empty state", st.State)
	}
}
