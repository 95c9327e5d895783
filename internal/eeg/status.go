package eeg

import "context"

// Status returns the current name, state, and badge for one instance.
//
// The vendor API offers no single-instance lookup, so this fetches the full
// listing and scans for the matching id. The result is always a fresh
// read-through; nothing is cached.
//
// Failures never propagate: a missing key, transport failure, vendor
// rejection, or unknown id all degrade to the placeholder status.
func (c *Client) Status(ctx context.Context, instanceID string) Status {
	unknown := Status{
		Name:  UnknownName,
		State: UnknownState,
		Badge: ClassifyBadge(UnknownState),
	}

	instances, err := c.fetchInstances(ctx)
	if err != nil {
		c.logger.Warn("status fetch failed", "instance", instanceID, "error", err)
		return unknown
	}

	for _, inst := range instances {
		if inst.InstanceID != instanceID {
			continue
		}
		name := inst.Settings.Name
		if name == "" {
			name = UnknownName
		}
		state := inst.State
		if state == "" {
			state = UnknownState
		}
		return Status{
			Name:  name,
			State: state,
			Badge: ClassifyBadge(state),
		}
	}

	return unknown
}
