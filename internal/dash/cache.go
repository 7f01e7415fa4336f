package dash

// cacheKey identifies one piece of preview content: which pane, for
// which pull request.
type cacheKey struct {
	mode PreviewMode
	id   string
}

// previewCache holds fetched preview content so cycling between panes
// and records does not refetch. Entries never expire on their own; they
// are dropped when their pull request leaves the working set.
type previewCache struct {
	entries map[cacheKey]string
}

func newPreviewCache() *previewCache {
	return &previewCache{entries: make(map[cacheKey]string)}
}

func (c *previewCache) Get(mode PreviewMode, id string) (string, bool) {
	v, ok := c.entries[cacheKey{mode, id}]
	return v, ok
}

func (c *previewCache) Put(mode PreviewMode, id, content string) {
	c.entries[cacheKey{mode, id}] = content
}

// Drop removes all cached panes for one pull request.
func (c *previewCache) Drop(id string) {
	for k := range c.entries {
		if k.id == id {
			delete(c.entries, k)
		}
	}
}

// Prune removes entries for pull requests no longer in the working set.
func (c *previewCache) Prune(valid map[string]bool) {
	for k := range c.entries {
		if !valid[k.id] {
			delete(c.entries, k)
		}
	}
}

func (c *previewCache) Len() int { return len(c.entries) }
