package services

import (
  "fmt"
  "strings"
  "github.com/google/uuid"
)

// IDGenerator mints the opaque string identifiers used by paths, curriculum
// items and articles. It is injected so tests can supply deterministic ids.
type IDGenerator interface {
  PathID() string
  ItemID() string
  ArticleID() string
}

type uuidIDGenerator struct{}

func NewIDGenerator() IDGenerator {
  return &uuidIDGenerator{}
}

func hexFragment() string {
  return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (g *uuidIDGenerator) PathID() string {
  return fmt.Sprintf("path_%s", hexFragment())
}

func (g *uuidIDGenerator) ItemID() string {
  return fmt.Sprintf("item_%s", hexFragment())
}

func (g *uuidIDGenerator) ArticleID() string {
  return fmt.Sprintf("art_%s", hexFragment())
}
