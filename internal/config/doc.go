// Package config loads tally.json (or tally.yaml) for the tally server.
//
// # Configuration File Structure
//
//	{
//	  "name": "clicks",
//	  "server": {
//	    "host": "localhost",
//	    "port": 8080,
//	    "shutdownTimeout": "10s",
//	    "readHeaderTimeout": "5s"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "path": "/metrics",
//	    "namespace": "tally"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "demo": {
//	    "depth": 3,
//	    "sections": 2
//	  }
//	}
//
// The same keys are accepted in YAML. Fields missing from the file keep
// their defaults.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Listening on", cfg.Address())
package config
