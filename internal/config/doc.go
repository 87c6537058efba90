// Package config provides configuration management for the entry demo.
//
// Configuration is loaded from environment variables and validated on startup.
// All configuration options have sensible defaults.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
