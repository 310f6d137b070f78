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

package viper

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/topfreegames/gamehost/internal/config"
)

const envPrefix = "gamehost"

type viperConfig struct {
	*viper.Viper
}

var _ config.Config = (*viperConfig)(nil)

// NewViperConfig reads the YAML file at configPath. Every key can be
// overridden by a GAMEHOST_ prefixed environment variable where dots are
// replaced by underscores, e.g. GAMEHOST_API_PORT for api.port.
func NewViperConfig(configPath string) (config.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	v.SetConfigFile(configPath)
	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return &viperConfig{Viper: v}, nil
}

// GetStringSlice also accepts comma separated strings, which is how lists are
// set through environment variables.
func (c *viperConfig) GetStringSlice(key string) []string {
	raw, ok := c.Viper.Get(key).(string)
	if !ok {
		return c.Viper.GetStringSlice(key)
	}

	var values []string
	for _, value := range strings.Split(raw, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}

	return values
}
