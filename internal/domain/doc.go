// Package domain contains the core domain model for agelens.
//
// The domain is presentation- and filesystem-agnostic: it does not depend on
// YAML parsing, terminal rendering, or the CLI. Infra/adapters map into/from
// these types.
package domain
