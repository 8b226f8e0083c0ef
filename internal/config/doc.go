// Package config loads, merges and validates configuration for the
// simulator server and its terminal client.
//
// Sources, highest precedence first:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
