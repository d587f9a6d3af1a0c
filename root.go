// Package avconsole exposes repository-level assets embedded into the binary.
package avconsole

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
