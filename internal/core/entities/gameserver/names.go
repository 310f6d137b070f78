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

package gameserver

import "strings"

const (
	ResourcePrefix = "gameserver"

	workloadNamePrefix    = ResourcePrefix + "-deployment-"
	serviceNamePrefix     = ResourcePrefix + "-service-"
	volumeClaimNamePrefix = ResourcePrefix + "-volumeclaim-"

	// SelectorLabelKey binds the workload pods to the service selector.
	SelectorLabelKey = ResourcePrefix
	// KindLabelKey records the game kind on every derived resource.
	KindLabelKey = "game"
	// ManagedByLabelKey marks resources created by gamehost.
	ManagedByLabelKey   = "app.kubernetes.io/managed-by"
	ManagedByLabelValue = "gamehost"
)

// Names holds every resource name derived from an instance id.
type Names struct {
	Workload      string
	Service       string
	VolumeClaim   string
	SelectorValue string
}

func NamesFor(id string) Names {
	return Names{
		Workload:      workloadNamePrefix + id,
		Service:       serviceNamePrefix + id,
		VolumeClaim:   volumeClaimNamePrefix + id,
		SelectorValue: ResourcePrefix + "-" + id,
	}
}

// IDFromServiceName derives the instance id from a service name. Services not
// following the gamehost naming fall back to the last dash separated segment.
func IDFromServiceName(name string) string {
	if id, ok := strings.CutPrefix(name, serviceNamePrefix); ok && id != "" {
		return id
	}

	if idx := strings.LastIndex(name, "-"); idx >= 0 && idx < len(name)-1 {
		return name[idx+1:]
	}

	return name
}

// Namespace returns the namespace holding every instance of owner.
func Namespace(prefix, owner string) string {
	return prefix + owner
}
