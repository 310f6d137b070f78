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

type Protocol string

const (
	ProtocolTCP Protocol = "TCP"
	ProtocolUDP Protocol = "UDP"
)

type ServiceType string

const (
	ServiceTypeClusterIP    ServiceType = "ClusterIP"
	ServiceTypeNodePort     ServiceType = "NodePort"
	ServiceTypeLoadBalancer ServiceType = "LoadBalancer"
)

type AccessMode string

const (
	AccessModeReadWriteOnce AccessMode = "ReadWriteOnce"
	AccessModeReadOnlyMany  AccessMode = "ReadOnlyMany"
	AccessModeReadWriteMany AccessMode = "ReadWriteMany"
)

// Descriptors are the declarative specs of every resource backing one
// instance. VolumeClaim is nil for kinds without persistent storage.
type Descriptors struct {
	Workload    WorkloadSpec
	Service     ServiceSpec
	VolumeClaim *VolumeClaimSpec
}

type WorkloadSpec struct {
	Name      string
	Replicas  int32
	Labels    map[string]string
	Selector  map[string]string
	Container ContainerSpec
}

type ContainerSpec struct {
	Name            string
	Image           string
	ImagePullPolicy string
	Ports           []ContainerPort
	VolumeMounts    []VolumeMount
}

type ContainerPort struct {
	Name     string
	Protocol Protocol
	Port     int32
}

// VolumeMount mounts the volume claim ClaimName at MountPath.
type VolumeMount struct {
	Name      string
	ClaimName string
	MountPath string
}

type ServiceSpec struct {
	Name     string
	Type     ServiceType
	Labels   map[string]string
	Selector map[string]string
	Ports    []ServicePort
}

type ServicePort struct {
	Name       string
	Protocol   Protocol
	Port       int32
	TargetPort int32
}

type VolumeClaimSpec struct {
	Name        string
	Labels      map[string]string
	VolumeName  string
	AccessModes []AccessMode
	Storage     string
}

type descriptorBuilder func(names Names) Descriptors

var descriptorBuilders = map[Kind]descriptorBuilder{
	KindMinecraft: buildMinecraftDescriptors,
	KindXonotic:   buildXonoticDescriptors,
}

// BuildDescriptors returns the workload, service and optional volume claim
// specs of an instance of kind identified by id. It performs no I/O and
// returns the same specs for the same arguments.
func BuildDescriptors(kind Kind, id string) (*Descriptors, error) {
	build, ok := descriptorBuilders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	descriptors := build(NamesFor(id))
	return &descriptors, nil
}

const (
	minecraftImage = "minecraft"
	minecraftPort  = 25565

	xonoticImage        = "xonotic"
	xonoticPort         = 26000
	xonoticVolumeName   = "xonotic"
	xonoticVolumeMount  = "xonotic-volume"
	xonoticMountPath    = "/root/xonotic/"
	xonoticStorageClaim = "1Gi"

	localImagePullPolicy = "Never"
)

func buildMinecraftDescriptors(names Names) Descriptors {
	return Descriptors{
		Workload: workloadSpec(KindMinecraft, names, ContainerSpec{
			Name:            KindMinecraft.String(),
			Image:           minecraftImage,
			ImagePullPolicy: localImagePullPolicy,
			Ports:           []ContainerPort{{Name: "game", Protocol: ProtocolTCP, Port: minecraftPort}},
		}),
		Service: serviceSpec(KindMinecraft, names, ServicePort{
			Name:       "game",
			Protocol:   ProtocolTCP,
			Port:       minecraftPort,
			TargetPort: minecraftPort,
		}),
	}
}

func buildXonoticDescriptors(names Names) Descriptors {
	return Descriptors{
		Workload: workloadSpec(KindXonotic, names, ContainerSpec{
			Name:            KindXonotic.String(),
			Image:           xonoticImage,
			ImagePullPolicy: localImagePullPolicy,
			Ports:           []ContainerPort{{Name: "game", Protocol: ProtocolUDP, Port: xonoticPort}},
			VolumeMounts: []VolumeMount{{
				Name:      xonoticVolumeMount,
				ClaimName: names.VolumeClaim,
				MountPath: xonoticMountPath,
			}},
		}),
		Service: serviceSpec(KindXonotic, names, ServicePort{
			Name:       "game",
			Protocol:   ProtocolUDP,
			Port:       xonoticPort,
			TargetPort: xonoticPort,
		}),
		VolumeClaim: &VolumeClaimSpec{
			Name:        names.VolumeClaim,
			Labels:      resourceLabels(KindXonotic, names),
			VolumeName:  xonoticVolumeName,
			AccessModes: []AccessMode{AccessModeReadWriteOnce},
			Storage:     xonoticStorageClaim,
		},
	}
}

func workloadSpec(kind Kind, names Names, container ContainerSpec) WorkloadSpec {
	return WorkloadSpec{
		Name:      names.Workload,
		Replicas:  1,
		Labels:    resourceLabels(kind, names),
		Selector:  selector(names),
		Container: container,
	}
}

func serviceSpec(kind Kind, names Names, port ServicePort) ServiceSpec {
	return ServiceSpec{
		Name:     names.Service,
		Type:     ServiceTypeLoadBalancer,
		Labels:   resourceLabels(kind, names),
		Selector: selector(names),
		Ports:    []ServicePort{port},
	}
}

func selector(names Names) map[string]string {
	return map[string]string{SelectorLabelKey: names.SelectorValue}
}

func resourceLabels(kind Kind, names Names) map[string]string {
	return map[string]string{
		SelectorLabelKey:  names.SelectorValue,
		KindLabelKey:      kind.String(),
		ManagedByLabelKey: ManagedByLabelValue,
	}
}
