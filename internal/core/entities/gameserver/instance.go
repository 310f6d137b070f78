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

import "fmt"

type Status int

const (
	// StatusProvisioning resources were submitted but the service has no
	// external address yet.
	StatusProvisioning Status = iota
	// StatusReady the service has an external address assigned.
	StatusReady
	// StatusDeleting the deletion of the resources was requested.
	StatusDeleting
	// StatusDeleted every resource of the instance was removed.
	StatusDeleted
	// StatusFailed provisioning could not be completed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusProvisioning:
		return "provisioning"
	case StatusReady:
		return "ready"
	case StatusDeleting:
		return "deleting"
	case StatusDeleted:
		return "deleted"
	case StatusFailed:
		return "failed"
	default:
		panic(fmt.Sprintf("invalid value for Status: %d", int(s)))
	}
}

// Instance is a game server provisioned for a user. Address and Port are only
// set once the orchestrator assigned external connectivity to the service.
type Instance struct {
	ID      string
	Kind    Kind
	Owner   string
	Address string
	Port    int32
	Status  Status
}

// Address is an externally reachable endpoint of a service.
type Address struct {
	Host string
	Port int32
}

func (a Address) String() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// Summary is the listing view of a game server, derived from its service.
type Summary struct {
	ID        string
	Kind      string
	Address   string
	Port      int32
	Available bool
}
