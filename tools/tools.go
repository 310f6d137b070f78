//go:build tools
// +build tools

package tools

import (
	_ "github.com/golang/mock/mockgen"
	_ "github.com/google/addlicense"
	_ "github.com/google/wire/cmd/wire"
)
