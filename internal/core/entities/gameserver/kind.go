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

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a game server kind is not one of the
// supported variants.
var ErrUnknownKind = errors.New("unknown game server kind")

// Kind identifies which game a server instance runs.
type Kind int

const (
	KindMinecraft Kind = iota
	KindXonotic
)

func (k Kind) String() string {
	switch k {
	case KindMinecraft:
		return "minecraft"
	case KindXonotic:
		return "xonotic"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// IsValid reports whether k is one of the supported kinds.
func (k Kind) IsValid() bool {
	_, ok := descriptorBuilders[k]
	return ok
}

func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "minecraft":
		return KindMinecraft, nil
	case "xonotic":
		return KindXonotic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, value)
	}
}
