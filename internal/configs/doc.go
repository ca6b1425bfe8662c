// Package configs manages toyrsa's configuration and on-disk locations.
//
// # Settings
//
// UserToyrsaSettings is initialized at startup and holds two directories:
//
//   - ConfigPath: os.UserConfigDir()/toyrsa, home of config.toml
//   - DataPath: $XDG_DATA_HOME/toyrsa (or ~/.local/share/toyrsa), home of
//     the operation log
//
// # Configuration File
//
// config.toml is optional. Missing keys keep their defaults:
//
//	[keygen]
//	max_exponent_attempts = 100000
//
//	[prompt]
//	max_retries = 5
//
//	[audit]
//	enabled = true
//
//	[display]
//	banner = true
//	banner_font = "standard"
//
// Loaded values are validated; out-of-range values return ErrInvalidConfig.
package configs
