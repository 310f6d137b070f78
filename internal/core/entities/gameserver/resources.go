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

// Service is the orchestrator's current view of a service.
type Service struct {
	Name      string
	Type      ServiceType
	Labels    map[string]string
	ClusterIP string
	Ports     []ServicePort
	// Ingress holds the external addresses assigned to a load balanced
	// service, empty until the orchestrator populates it.
	Ingress []Address
}

// ExternalAddress returns the first ingress entry, which is authoritative.
func (s *Service) ExternalAddress() (Address, bool) {
	if len(s.Ingress) == 0 {
		return Address{}, false
	}

	address := s.Ingress[0]
	if address.Port == 0 {
		address.Port = s.FirstPort()
	}

	return address, true
}

func (s *Service) FirstPort() int32 {
	if len(s.Ports) == 0 {
		return 0
	}

	return s.Ports[0].Port
}

// Workload is the orchestrator's current view of a workload.
type Workload struct {
	Name          string
	Labels        map[string]string
	Replicas      int32
	ReadyReplicas int32
}
