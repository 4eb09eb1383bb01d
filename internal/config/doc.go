// Package config loads the ecolab.json server configuration: listen
// address, log level, session idle eviction, and the simulator seed.
package config
