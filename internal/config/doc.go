// Package config provides the configuration system for centerview.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by cmd)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← CENTERVIEW_*
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/centerview/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Settings files may be TOML (.toml) or YAML (.yaml, .yml). Only the keys
// present in a file override the layer below it.
//
// # Live Configuration
//
// A Store holds the merged configuration for the running process. Readers
// call Store.Centering on every computation instead of caching values, so a
// reload is visible on the next layout change. A Watcher reloads the file
// when it changes on disk and pushes the result into the Store.
//
// # Example
//
//	cfg := config.Default()
//	if _, err := config.LoadFile(config.DefaultPath(), &cfg); err != nil {
//	    return err
//	}
//	config.ApplyEnv(&cfg)
//	store := config.NewStore(cfg)
//	store.Subscribe(func(c config.Config) { log.Println("reloaded") })
package config
