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
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/require"
)

type createRequest struct {
	Kind string `json:"kind" binding:"omitempty,gameserver_kind"`
}

type serverURI struct {
	ID string `uri:"id" binding:"required,gameserver_id"`
}

func TestRegisterValidations(t *testing.T) {
	require.NoError(t, RegisterValidations())
	require.NoError(t, RegisterValidations())

	t.Run("gameserver_kind", func(t *testing.T) {
		require.NoError(t, binding.Validator.ValidateStruct(&createRequest{Kind: "minecraft"}))
		require.NoError(t, binding.Validator.ValidateStruct(&createRequest{}))

		err := binding.Validator.ValidateStruct(&createRequest{Kind: "quake"})
		require.Error(t, err)
		require.Equal(t, "Kind must be one of the following options: minecraft, xonotic", TranslateError(err))
	})

	t.Run("gameserver_id", func(t *testing.T) {
		require.NoError(t, binding.Validator.ValidateStruct(&serverURI{ID: "abcd"}))

		err := binding.Validator.ValidateStruct(&serverURI{ID: "Not_Valid"})
		require.Error(t, err)
		require.Equal(t, "ID must be a valid game server id", TranslateError(err))
	})
}
