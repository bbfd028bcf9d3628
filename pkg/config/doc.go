// Package config resolves graftree settings from layered sources.
//
// Layers, lowest precedence first:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. global files: $XDG_CONFIG_HOME/graftree/config.toml, then ~/.graftreerc
//  3. the local .graftreerc in the source checkout
//  4. GRAFTREE_* environment variables (lists are comma separated)
//  5. command-line overrides
//
// File layers replace lists wholesale; command-line include and exclude
// patterns are appended to whatever the files resolved to. The file format
// follows the extension: .toml, .yaml/.yml, anything else is JSON. A file
// that does not parse is skipped with a warning.
package config
