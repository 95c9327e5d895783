package eeg

// Instance is an immutable descriptor of a controllable Lexi instance.
type Instance struct {
	// ID is the vendor-assigned, stable instance identifier.
	ID string `json:"id"`

	// Name is the human-facing display name from the instance settings.
	Name string `json:"name"`
}

// Status is a point-in-time view of one instance, derived fresh on every
// read. It is never cached.
type Status struct {
	Name  string `json:"name"`
	State string `json:"state"`
	Badge Badge  `json:"badge"`
}

// Placeholder values used when an instance cannot be resolved.
const (
	UnknownName  = "unknown instance"
	UnknownState = "UNKNOWN"
)

// rawInstance mirrors one record of the vendor's instance listing.
type rawInstance struct {
	InstanceID string      `json:"instance_id"`
	State      string      `json:"state"`
	Settings   rawSettings `json:"settings"`
}

type rawSettings struct {
	Name string `json:"name"`
}

// instancesResponse mirrors GET /instances?get_history=0.
type instancesResponse struct {
	AllInstances []rawInstance `json:"all_instances"`
}

// Logger defines the logging interface used by this package.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
