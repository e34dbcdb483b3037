// Package config loads the layered unitool configuration.
//
// Sources, from lowest to highest precedence:
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file at $XDG_CONFIG_HOME/unitool/config.toml
//  3. an explicit file given with --config
//  4. UNITOOL_ environment variables, "__" separating section and key
package config
