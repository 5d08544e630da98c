// Package config provides configuration parsing for the demo server.
//
// The configuration is stored in simplistic.json at the project root.
// This package handles loading, saving, and defaulting configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "my-demos",
//	  "host": "localhost",
//	  "port": 9292,
//	  "pretty": true,
//	  "openBrowser": false
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", cfg.Address())
package config
