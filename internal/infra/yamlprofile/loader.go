// Package yamlprofile loads profile documents from YAML files and maps them
// into domain types. The file only collects the inputs; it never stores
// computed results.
package yamlprofile

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nvidales/agelens/internal/domain"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) LoadProfile(path string) (domain.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Profile{}, &domain.OpError{
			Op:   "yamlprofile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLProfile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Profile{}, &domain.OpError{
			Op:   "yamlprofile.load",
			Kind: domain.KindInvalidProfile,
			Path: path,
			Err:  err,
		}
	}

	return MapProfile(path, dto)
}
