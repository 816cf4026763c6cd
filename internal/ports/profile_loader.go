// Package ports defines the interfaces the usecases depend on, implemented
// by infra adapters.
package ports

import "github.com/nvidales/agelens/internal/domain"

// ProfileLoader loads a profile document from a name or path.
type ProfileLoader interface {
	LoadProfile(path string) (domain.Profile, error)
}
