// Package config provides configuration loading, merging, and validation
// facilities for the invite-cards server and CLI.
//
// Configuration is assembled from several sources. Sources are merged with
// mergo, which only fills fields that are still zero, so earlier sources win:
//  1. Environment variables
//  2. Command-line flags (server only; the CLI binds its own cobra flags)
//  3. JSON config file (path from CONFIG or -c/-config)
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetCLIConfig] for the invitesctl command.
package config
