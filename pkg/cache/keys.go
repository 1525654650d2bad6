package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer builds cache keys for the values the pipeline stores.
type Keyer interface {
	// PlanKey returns the key for a split plan of a canonical windowgram.
	PlanKey(windowgram string, opts PlanKeyOpts) string

	// ClassifyKey returns the key for the layout type of a canonical
	// windowgram.
	ClassifyKey(windowgram string) string
}

// PlanKeyOpts are the compile options that change a split plan.
type PlanKeyOpts struct {
	CanvasWidth  int `json:"canvas_width"`
	CanvasHeight int `json:"canvas_height"`
	Divider      int `json:"divider"`
}

func (o PlanKeyOpts) String() string {
	return fmt.Sprintf("%dx%d/%d", o.CanvasWidth, o.CanvasHeight, o.Divider)
}

// DefaultKeyer hashes the windowgram together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PlanKey implements Keyer.
func (DefaultKeyer) PlanKey(windowgram string, opts PlanKeyOpts) string {
	return hashKey("plan", windowgram, opts)
}

// ClassifyKey implements Keyer.
func (DefaultKeyer) ClassifyKey(windowgram string) string {
	return hashKey("classify", windowgram)
}

// hashKey builds "kind:sha256(json(parts))". Including the options in the
// hashed JSON keeps plans for different canvases apart.
func hashKey(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return kind + ":" + Hash(data)
}

// Hash returns the hex SHA-256 of data. FileCache also uses it to name
// entry files.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
