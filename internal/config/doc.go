// Package config loads, normalizes, and validates threads-cli configuration.
//
// It supplies repository defaults, reads an optional TOML file, loads a `.env`
// file from the working directory, and applies environment overrides such as
// ACCESS_TOKEN, BASE_URL and DRAFTS_FILE. The Config value is built once per
// process and passed explicitly to the drafts store, the Threads client and the
// logger. The only other environment lookup is the cache directory used by
// drafts.ResolvePath.
package config
