// Package config provides runtime configuration for the party board game.
//
// Settings come from, in increasing priority: defaults, an optional YAML
// file, the environment (PARTY_* variables, optionally loaded from a .env
// file) and finally command-line flags applied by the caller.
//
// Configuration Format:
//
//	log-level: debug
//	seed: 42
//	path-strategy: boundary   # reachability | boundary
//	movement: walk            # path | walk
//	theme: ascii              # emoji | ascii | path to an INI theme file
//	headless: true
//
// Rules such as coin rewards, the dice range and the number of ticks are
// fixed and cannot be configured.
package config
