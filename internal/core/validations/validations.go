// MIT License
//
// Copyright (c) 2021 TFG Co
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package validations

import (
	"regexp"

	"github.com/topfreegames/gamehost/internal/core/entities/gameserver"
)

const (
	maxKubeResourceNameLength = 63
)

var kubeResourceNameRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// IsGameServerKindSupported checks if kind names one of the games that can
// be provisioned.
func IsGameServerKindSupported(kind string) bool {
	_, err := gameserver.ParseKind(kind)
	return err == nil
}

// IsKubeResourceNameValid check if name is valid for kubernetes resources (RFC 1123).
func IsKubeResourceNameValid(name string) bool {
	if len(name) == 0 || len(name) > maxKubeResourceNameLength {
		return false
	}

	return kubeResourceNameRegex.MatchString(name)
}

// IsServerIDValid checks that every resource name derived from id is a valid
// kubernetes resource name.
func IsServerIDValid(id string) bool {
	if id == "" {
		return false
	}

	names := gameserver.NamesFor(id)
	for _, name := range []string{names.Workload, names.Service, names.VolumeClaim, names.SelectorValue} {
		if !IsKubeResourceNameValid(name) {
			return false
		}
	}

	return true
}

// IsNamespaceValid checks that the namespace built from prefix and owner is
// a valid kubernetes namespace name.
func IsNamespaceValid(prefix, owner string) bool {
	if owner == "" {
		return false
	}

	return IsKubeResourceNameValid(gameserver.Namespace(prefix, owner))
}
