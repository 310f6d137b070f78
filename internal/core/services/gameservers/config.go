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

package gameservers

import "time"

const (
	DefaultNamespacePrefix       = "user-"
	DefaultReadinessMaxAttempts  = 50
	DefaultReadinessInitialDelay = 500 * time.Millisecond
	DefaultReadinessMaxDelay     = 5 * time.Second
)

type GameServerManagerConfig struct {
	// NamespacePrefix is prepended to the owner to build its namespace.
	NamespacePrefix string
	// RollbackOnCreateFailure deletes the resources already created when a
	// later creation step fails.
	RollbackOnCreateFailure bool
	Readiness               ReadinessConfig
}

type ReadinessConfig struct {
	// MaxAttempts is the number of service reads before giving up.
	MaxAttempts int
	// InitialDelay is the wait after the first failed read. It doubles on
	// every attempt up to MaxDelay.
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func DefaultConfig() GameServerManagerConfig {
	return GameServerManagerConfig{
		NamespacePrefix:         DefaultNamespacePrefix,
		RollbackOnCreateFailure: true,
		Readiness: ReadinessConfig{
			MaxAttempts:  DefaultReadinessMaxAttempts,
			InitialDelay: DefaultReadinessInitialDelay,
			MaxDelay:     DefaultReadinessMaxDelay,
		},
	}
}
