// Package config provides configuration maps with type-safe accessors
// and yaml/json file loaders.
//
// Config wraps a map[string]any; accessors return a caller-supplied
// default when a key is missing or has the wrong type, so loading a
// partial configuration never fails at read time.
//
// Typical usage with enumdispatch:
//
//	cfg, err := config.FromFile("dispatch.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts, err := enumdispatch.FromConfig(cfg)
package config
