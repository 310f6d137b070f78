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

package kubernetes

import (
	"fmt"

	"github.com/topfreegames/gamehost/internal/core/entities/gameserver"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

func convertWorkloadSpec(namespace string, spec gameserver.WorkloadSpec) *appsv1.Deployment {
	replicas := spec.Replicas
	podSpec := corev1.PodSpec{
		Containers: []corev1.Container{convertContainer(spec.Container)},
	}
	for _, mount := range spec.Container.VolumeMounts {
		podSpec.Volumes = append(podSpec.Volumes, corev1.Volume{
			Name: mount.Name,
			VolumeSource: corev1.VolumeSource{
				PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{
					ClaimName: mount.ClaimName,
				},
			},
		})
	}

	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: namespace,
			Labels:    copyLabels(spec.Labels),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: copyLabels(spec.Selector),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: copyLabels(spec.Labels),
				},
				Spec: podSpec,
			},
		},
	}
}

func convertContainer(spec gameserver.ContainerSpec) corev1.Container {
	container := corev1.Container{
		Name:            spec.Name,
		Image:           spec.Image,
		ImagePullPolicy: corev1.PullPolicy(spec.ImagePullPolicy),
	}
	for _, port := range spec.Ports {
		container.Ports = append(container.Ports, corev1.ContainerPort{
			Name:          port.Name,
			Protocol:      corev1.Protocol(port.Protocol),
			ContainerPort: port.Port,
		})
	}
	for _, mount := range spec.VolumeMounts {
		container.VolumeMounts = append(container.VolumeMounts, corev1.VolumeMount{
			Name:      mount.Name,
			MountPath: mount.MountPath,
		})
	}

	return container
}

func convertServiceSpec(namespace string, spec gameserver.ServiceSpec) *corev1.Service {
	service := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: namespace,
			Labels:    copyLabels(spec.Labels),
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceType(spec.Type),
			Selector: copyLabels(spec.Selector),
		},
	}
	for _, port := range spec.Ports {
		service.Spec.Ports = append(service.Spec.Ports, corev1.ServicePort{
			Name:       port.Name,
			Protocol:   corev1.Protocol(port.Protocol),
			Port:       port.Port,
			TargetPort: intstr.FromInt32(port.TargetPort),
		})
	}

	return service
}

func convertVolumeClaimSpec(namespace string, spec gameserver.VolumeClaimSpec) (*corev1.PersistentVolumeClaim, error) {
	storage, err := resource.ParseQuantity(spec.Storage)
	if err != nil {
		return nil, fmt.Errorf("invalid storage request %q: %w", spec.Storage, err)
	}

	accessModes := make([]corev1.PersistentVolumeAccessMode, 0, len(spec.AccessModes))
	for _, mode := range spec.AccessModes {
		accessModes = append(accessModes, corev1.PersistentVolumeAccessMode(mode))
	}

	return &corev1.PersistentVolumeClaim{
		ObjectMeta: metav1.ObjectMeta{
			Name:      spec.Name,
			Namespace: namespace,
			Labels:    copyLabels(spec.Labels),
		},
		Spec: corev1.PersistentVolumeClaimSpec{
			AccessModes: accessModes,
			VolumeName:  spec.VolumeName,
			Resources: corev1.VolumeResourceRequirements{
				Requests: corev1.ResourceList{
					corev1.ResourceStorage: storage,
				},
			},
		},
	}, nil
}

func convertService(service *corev1.Service) *gameserver.Service {
	converted := &gameserver.Service{
		Name:      service.Name,
		Type:      gameserver.ServiceType(service.Spec.Type),
		Labels:    copyLabels(service.Labels),
		ClusterIP: service.Spec.ClusterIP,
	}
	for _, port := range service.Spec.Ports {
		converted.Ports = append(converted.Ports, gameserver.ServicePort{
			Name:       port.Name,
			Protocol:   gameserver.Protocol(port.Protocol),
			Port:       port.Port,
			TargetPort: port.TargetPort.IntVal,
		})
	}
	for _, ingress := range service.Status.LoadBalancer.Ingress {
		host := ingress.Hostname
		if host == "" {
			host = ingress.IP
		}
		if host == "" {
			continue
		}

		address := gameserver.Address{Host: host}
		if len(ingress.Ports) > 0 {
			address.Port = ingress.Ports[0].Port
		}
		converted.Ingress = append(converted.Ingress, address)
	}

	return converted
}

func convertDeployment(deployment *appsv1.Deployment) *gameserver.Workload {
	workload := &gameserver.Workload{
		Name:          deployment.Name,
		Labels:        copyLabels(deployment.Labels),
		ReadyReplicas: deployment.Status.ReadyReplicas,
	}
	if deployment.Spec.Replicas != nil {
		workload.Replicas = *deployment.Spec.Replicas
	}

	return workload
}

func copyLabels(labels map[string]string) map[string]string {
	if labels == nil {
		return nil
	}

	copied := make(map[string]string, len(labels))
	for key, value := range labels {
		copied[key] = value
	}

	return copied
}
