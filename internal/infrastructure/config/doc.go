// Package config handles loading and validating Lexi Control configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of required fields
//   - Default value handling
//
// Security Considerations:
//   - Sensitive values (EEG API key, PIN, JWT secret) should be set via
//     environment variables rather than committed to the config file
//   - The config file should have restricted permissions (0600)
//   - The JWT secret must be changed from any example value before
//     production use
//
// The EEG API key is deliberately NOT a required field: vendor-dependent
// operations fail soft (empty directory, unknown status) when it is absent,
// so a misconfigured deployment still serves its lock screen and panel.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Site.Name)
package config
