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

//go:build unit
// +build unit

package validations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGameServerKindSupported(t *testing.T) {
	t.Run("with success when kind is supported", func(t *testing.T) {
		assert.True(t, IsGameServerKindSupported("minecraft"))
		assert.True(t, IsGameServerKindSupported("Xonotic"))
	})

	t.Run("fails when kind is not supported", func(t *testing.T) {
		assert.False(t, IsGameServerKindSupported("quake"))
		assert.False(t, IsGameServerKindSupported(""))
	})
}

func TestIsKubeResourceNameValid(t *testing.T) {
	t.Run("with success when name follows RFC 1123", func(t *testing.T) {
		assert.True(t, IsKubeResourceNameValid("gameserver-service-abcd"))
		assert.True(t, IsKubeResourceNameValid("a"))
		assert.True(t, IsKubeResourceNameValid(strings.Repeat("a", 63)))
	})

	t.Run("fails when name does not follow RFC 1123", func(t *testing.T) {
		assert.False(t, IsKubeResourceNameValid(""))
		assert.False(t, IsKubeResourceNameValid("-abcd"))
		assert.False(t, IsKubeResourceNameValid("abcd-"))
		assert.False(t, IsKubeResourceNameValid("ABCD"))
		assert.False(t, IsKubeResourceNameValid("ab_cd"))
		assert.False(t, IsKubeResourceNameValid(strings.Repeat("a", 64)))
	})
}

func TestIsServerIDValid(t *testing.T) {
	t.Run("with success for generated ids", func(t *testing.T) {
		assert.True(t, IsServerIDValid("abcd"))
		assert.True(t, IsServerIDValid("x7k2"))
	})

	t.Run("fails for ids that produce invalid resource names", func(t *testing.T) {
		assert.False(t, IsServerIDValid(""))
		assert.False(t, IsServerIDValid("ABCD"))
		assert.False(t, IsServerIDValid("ab/cd"))
		assert.False(t, IsServerIDValid("abcd-"))
		assert.False(t, IsServerIDValid(strings.Repeat("a", 60)))
	})
}

func TestIsNamespaceValid(t *testing.T) {
	assert.True(t, IsNamespaceValid("user-", "franco"))
	assert.False(t, IsNamespaceValid("user-", ""))
	assert.False(t, IsNamespaceValid("user-", "Franco"))
	assert.False(t, IsNamespaceValid("user-", "franco@example.com"))
}
