// Package idgenerator builds unique identifiers from an optional prefix, an
// epoch-millisecond timestamp and a base64url-encoded UUID. The timestamp
// keeps identifiers roughly sortable by creation time.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

// Generate joins the prefixes with dashes and appends the timestamp plus an
// encoded UUID. With no prefixes the bare timestamp-UUID form is returned.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	suffix := fmt.Sprintf("%d%s", time.Now().UnixMilli(), encodedUUID())

	if prefix == "" {
		return suffix
	}

	return fmt.Sprintf("%s-%s", prefix, suffix)
}

func encodedUUID() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}
