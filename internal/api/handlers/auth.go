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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	DefaultAuthCookieName = "user"

	ownerContextKey = "gamehost.owner"
)

type AuthConfig struct {
	// CookieName is the cookie holding the user identity.
	CookieName string
	// Users is the allow-list of identities.
	Users []string
}

// CookieAuth rejects requests whose identity cookie is missing or not in the
// allow-list with a bare 401. Accepted identities are available to the next
// handlers through Owner.
func CookieAuth(config AuthConfig, logger *zap.Logger) gin.HandlerFunc {
	cookieName := config.CookieName
	if cookieName == "" {
		cookieName = DefaultAuthCookieName
	}

	allowed := make(map[string]struct{}, len(config.Users))
	for _, user := range config.Users {
		allowed[user] = struct{}{}
	}

	return func(c *gin.Context) {
		user, err := c.Cookie(cookieName)
		if err != nil || user == "" {
			logger.Debug("request without identity cookie", zap.String("path", c.FullPath()))
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if _, ok := allowed[user]; !ok {
			logger.Debug("request from unknown user", zap.String("path", c.FullPath()))
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ownerContextKey, user)
		c.Next()
	}
}

// Owner returns the identity accepted by CookieAuth.
func Owner(c *gin.Context) string {
	return c.GetString(ownerContextKey)
}
