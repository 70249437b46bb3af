package eldlog

import (
	"encoding/json"
	"fmt"
	"hash/fnv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/princesinghrajput/eld-logsheet/logsheet"
	"github.com/princesinghrajput/eld-logsheet/render"
)

// RenderCache memoizes rendered sheets. Geometry and drawing are pure
// functions of (day, width, theme), so a digest of the day plus those
// parameters fully keys a render; day ids alone are not enough because an
// upstream refetch can change a day's content without changing its id.
type RenderCache struct {
	entries *lru.Cache[string, []byte]
}

// NewRenderCache creates a cache holding up to size rendered sheets.
func NewRenderCache(size int) (*RenderCache, error) {
	entries, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("render cache: %w", err)
	}
	return &RenderCache{entries: entries}, nil
}

func renderKey(day logsheet.Day, width float64, theme render.Theme) string {
	h := fnv.New64a()
	if b, err := json.Marshal(day); err == nil {
		_, _ = h.Write(b)
	}
	return fmt.Sprintf("%x|%.0f|%s", h.Sum64(), width, theme)
}

// Get returns a cached render for the key parameters.
func (rc *RenderCache) Get(day logsheet.Day, width float64, theme render.Theme) ([]byte, bool) {
	return rc.entries.Get(renderKey(day, width, theme))
}

// Put stores a rendered sheet.
func (rc *RenderCache) Put(day logsheet.Day, width float64, theme render.Theme, svg []byte) {
	rc.entries.Add(renderKey(day, width, theme), svg)
}
