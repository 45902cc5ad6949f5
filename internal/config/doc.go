// Package config provides configuration loading, merging, and validation
// facilities for the notes server and the notes client.
//
// Configuration is assembled from multiple sources in the following priority
// order (a source earlier in the list wins for every field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
