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

package gen

// Wire
//go:generate go run github.com/google/wire/cmd/wire ./../...

// Primary "input" ports Mocks
//go:generate go run github.com/golang/mock/mockgen -source=../internal/core/ports/gameserver_ports.go -destination=../internal/core/ports/mock/gameserver_ports_mock.go -package=mock

// Secondary "output" ports Mocks
//go:generate go run github.com/golang/mock/mockgen -source=../internal/core/ports/orchestrator.go -destination=../internal/adapters/runtime/mock/mock.go -package=mock
//go:generate go run github.com/golang/mock/mockgen -source=../internal/config/config.go -destination=../internal/config/mock/mock.go -package=mock

// License
//go:generate go run github.com/google/addlicense -v -skip yml -skip yaml -f ../LICENSE ../
