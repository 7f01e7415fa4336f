package dash

import "testing"

func TestPreviewCache(t *testing.T) {
	c := newPreviewCache()
	c.Put(PreviewBody, "a", "body a")
	c.Put(PreviewFiles, "a", "files a")
	c.Put(PreviewBody, "b", "body b")

	if got, ok := c.Get(PreviewBody, "a"); !ok || got != "body a" {
		t.Errorf("Get = %q, %v", got, ok)
	}
	if _, ok := c.Get(PreviewCommits, "a"); ok {
		t.Error("missing pane reported as cached")
	}

	c.Drop("a")
	if _, ok := c.Get(PreviewBody, "a"); ok {
		t.Error("Drop left a pane behind")
	}
	if _, ok := c.Get(PreviewBody, "b"); !ok {
		t.Error("Drop removed another record's entry")
	}

	c.Put(PreviewBody, "c", "body c")
	c.Prune(map[string]bool{"b": true})
	if c.Len() != 1 {
		t.Errorf("after prune len = %d, want 1", c.Len())
	}
}
