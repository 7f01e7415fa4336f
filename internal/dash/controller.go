package dash

import (
	"fmt"
	"time"

	"github.com/prdeck/prdeck/models"
)

// PreviewMode selects which pane is shown beside the list. Cycling
// moves through the modes in order and saturates at both ends.
type PreviewMode int

const (
	PreviewOff PreviewMode = iota
	PreviewBody
	PreviewFiles
	PreviewCommits
)

func (m PreviewMode) String() string {
	switch m {
	case PreviewBody:
		return "description"
	case PreviewFiles:
		return "files"
	case PreviewCommits:
		return "commits"
	default:
		return "off"
	}
}

// Status is the message shown in the bottom bar. A zero ExpiresAt
// means the message persists until replaced (used while a task runs);
// otherwise it disappears once the deadline passes.
type Status struct {
	Text      string
	ExpiresAt time.Time
}

// Controller owns all dashboard state and transitions. Its methods run
// on the UI goroutine and never block: operations that need the network
// queue a Task, post a persistent status, and return. The event loop
// picks the task up with TakePending, runs it, and reports back through
// the Apply methods.
type Controller struct {
	targets []models.Slug

	prs     []models.PullRequest
	cursor  int // index into prs, -1 when the set is empty
	preview PreviewMode
	scroll  int
	cache   *previewCache

	contrib       *models.ContributionCalendar
	contribLogin  string
	showContrib   bool
	contribLoaded bool

	status    Status
	statusTTL time.Duration

	pending *Task
	busy    bool

	now func() time.Time
}

// NewController creates a Controller for the given targets. statusTTL
// bounds how long transient messages stay visible.
func NewController(targets []models.Slug, statusTTL time.Duration) *Controller {
	if statusTTL <= 0 {
		statusTTL = 3 * time.Second
	}
	c := &Controller{
		targets:   targets,
		cursor:    -1,
		cache:     newPreviewCache(),
		statusTTL: statusTTL,
		now:       time.Now,
	}
	if len(targets) > 0 {
		c.contribLogin = targets[0].Owner
	}
	return c
}

// Targets returns the configured account/repo slugs.
func (c *Controller) Targets() []models.Slug { return c.targets }

// WorkingSet returns the current pull request records in display order.
func (c *Controller) WorkingSet() []models.PullRequest { return c.prs }

// Selected returns the highlighted record, or false when nothing is
// selected.
func (c *Controller) Selected() (models.PullRequest, bool) {
	if c.cursor < 0 || c.cursor >= len(c.prs) {
		return models.PullRequest{}, false
	}
	return c.prs[c.cursor], true
}

func (c *Controller) Cursor() int                { return c.cursor }
func (c *Controller) Preview() PreviewMode       { return c.preview }
func (c *Controller) ScrollOffset() int          { return c.scroll }
func (c *Controller) Busy() bool                 { return c.busy }
func (c *Controller) CurrentStatus() Status      { return c.status }
func (c *Controller) ShowingContributions() bool { return c.showContrib }

// Calendar returns the loaded contribution calendar, nil before the
// first load completes.
func (c *Controller) Calendar() (*models.ContributionCalendar, string) {
	return c.contrib, c.contribLogin
}

// SelectNext moves the cursor down one row, wrapping at the end.
// Changing selection resets the preview scroll.
func (c *Controller) SelectNext() {
	if len(c.prs) == 0 {
		return
	}
	c.cursor = (c.cursor + 1) % len(c.prs)
	c.scroll = 0
	c.ensurePreview()
}

// SelectPrev moves the cursor up one row, wrapping at the top.
func (c *Controller) SelectPrev() {
	if len(c.prs) == 0 {
		return
	}
	c.cursor--
	if c.cursor < 0 {
		c.cursor = len(c.prs) - 1
	}
	c.scroll = 0
	c.ensurePreview()
}

// AdvancePreview opens the preview or moves to the next pane,
// saturating at the last one.
func (c *Controller) AdvancePreview() {
	if c.preview < PreviewCommits {
		c.preview++
		c.scroll = 0
		c.ensurePreview()
	}
}

// RetreatPreview moves to the previous pane, closing the preview after
// the first one.
func (c *Controller) RetreatPreview() {
	if c.preview > PreviewOff {
		c.preview--
		c.scroll = 0
		c.ensurePreview()
	}
}

// Scroll moves the preview viewport by delta lines, never above the
// top. No effect while the preview is closed.
func (c *Controller) Scroll(delta int) {
	if c.preview == PreviewOff {
		return
	}
	c.scroll += delta
	if c.scroll < 0 {
		c.scroll = 0
	}
}

// ToggleContributions switches the contributions pane on or off,
// queueing a calendar load when the pane opens without current data.
func (c *Controller) ToggleContributions() {
	c.showContrib = !c.showContrib
	if c.showContrib {
		c.ensureContributions()
	}
}

// MergeSelected queues a merge for the highlighted pull request. Only
// records the platform reports as cleanly mergeable are eligible.
func (c *Controller) MergeSelected() {
	pr, ok := c.Selected()
	if !ok {
		c.setTransient("nothing selected")
		return
	}
	if pr.MergeState != models.MergeStateClean {
		c.setTransient(fmt.Sprintf("%s#%d is not mergeable (%s)", pr.Slug(), pr.Number, pr.MergeState))
		return
	}
	if c.queue(&Task{Kind: TaskMerge, PR: pr}) {
		c.setPersistent(fmt.Sprintf("merging %s#%d...", pr.Slug(), pr.Number))
	}
}

// ApproveSelected queues an approving review for the highlighted pull
// request.
func (c *Controller) ApproveSelected() {
	pr, ok := c.Selected()
	if !ok {
		c.setTransient("nothing selected")
		return
	}
	if c.queue(&Task{Kind: TaskApprove, PR: pr}) {
		c.setPersistent(fmt.Sprintf("approving %s#%d...", pr.Slug(), pr.Number))
	}
}

// ReloadAll queues a reload of every configured target.
func (c *Controller) ReloadAll() {
	if c.queue(&Task{Kind: TaskReloadAll}) {
		c.setPersistent("reloading...")
	}
}

// ReloadRepo queues a reload of one repository; the fresh records are
// spliced into the working set where the old ones sat.
func (c *Controller) ReloadRepo(owner, name string) {
	if c.queue(&Task{Kind: TaskReloadRepo, Owner: owner, Name: name}) {
		c.setPersistent(fmt.Sprintf("reloading %s/%s...", owner, name))
	}
}

// DismissStatus clears the current status message.
func (c *Controller) DismissStatus() {
	c.status = Status{}
}

// TakePending hands the queued task to the event loop and marks the
// controller busy until the matching Apply call.
func (c *Controller) TakePending() *Task {
	if c.pending == nil {
		return nil
	}
	t := c.pending
	c.pending = nil
	c.busy = true
	return t
}

// Tick expires transient status messages. Called on every timer event.
func (c *Controller) Tick(now time.Time) {
	if !c.status.ExpiresAt.IsZero() && now.After(c.status.ExpiresAt) {
		c.status = Status{}
	}
}

// ApplyReload installs a freshly fetched working set. The cursor keeps
// its position, clamped to the new length; records may have shifted
// under it, which is acceptable for a wholesale refresh. Cache entries
// for departed records are pruned.
func (c *Controller) ApplyReload(prs []models.PullRequest, err error) {
	c.busy = false
	if err != nil {
		c.setTransient("reload failed: " + err.Error())
		return
	}

	c.prs = prs
	c.cursor = clamp(c.cursor, len(prs))

	valid := make(map[string]bool, len(prs))
	for _, pr := range prs {
		valid[pr.ID] = true
	}
	c.cache.Prune(valid)

	// The calendar tracks full reloads; an open (or reopened) pane picks
	// up a fresh one through ensureContributions.
	c.contribLoaded = false

	c.setTransient(fmt.Sprintf("loaded %d pull requests", len(prs)))
	c.ensurePreview()
}

// ApplyRepoReload splices fresh records for one repository into the
// working set at the position the old ones occupied. Cached previews of
// every refreshed record are dropped; the open pane reloads through
// EnsurePreview.
func (c *Controller) ApplyRepoReload(owner, name string, fresh []models.PullRequest, err error) {
	c.busy = false
	if err != nil {
		c.setTransient(fmt.Sprintf("reload of %s/%s failed: %s", owner, name, err))
		return
	}

	selectedID := ""
	oldPos := c.cursor
	if pr, ok := c.Selected(); ok {
		selectedID = pr.ID
	}

	kept := make([]models.PullRequest, 0, len(c.prs))
	at := -1
	for _, pr := range c.prs {
		if pr.SameRepo(owner, name) {
			if at < 0 {
				at = len(kept)
			}
			// The reload refreshed this record; any cached preview is
			// stale regardless of whether the record survived.
			c.cache.Drop(pr.ID)
			continue
		}
		kept = append(kept, pr)
	}
	if at < 0 {
		at = len(kept)
	}

	next := make([]models.PullRequest, 0, len(kept)+len(fresh))
	next = append(next, kept[:at]...)
	next = append(next, fresh...)
	next = append(next, kept[at:]...)
	c.prs = next

	c.cursor = findByID(next, selectedID)
	if c.cursor < 0 {
		c.cursor = clamp(oldPos, len(next))
	}

	c.setTransient(fmt.Sprintf("%s/%s: %d open", owner, name, len(fresh)))
	c.ensurePreview()
}

// ApplyMerged records the outcome of a merge. On success the record
// leaves the working set and its cached previews immediately; a scoped
// reload then reconciles the repository with the remote.
func (c *Controller) ApplyMerged(pr models.PullRequest, err error) {
	c.busy = false
	if err != nil {
		c.setTransient("merge failed: " + err.Error())
		return
	}

	for i := range c.prs {
		if c.prs[i].ID == pr.ID {
			c.prs = append(c.prs[:i], c.prs[i+1:]...)
			break
		}
	}
	c.cursor = clamp(c.cursor, len(c.prs))
	c.cache.Drop(pr.ID)

	c.setTransient(fmt.Sprintf("merged %s#%d", pr.Slug(), pr.Number))
	c.queue(&Task{Kind: TaskReloadRepo, Owner: pr.Owner, Name: pr.Name})
}

// ApplyApproved records the outcome of an approval and queues a scoped
// reload to pick up the new review state.
func (c *Controller) ApplyApproved(pr models.PullRequest, err error) {
	c.busy = false
	if err != nil {
		c.setTransient("approve failed: " + err.Error())
		return
	}
	c.setTransient(fmt.Sprintf("approved %s#%d", pr.Slug(), pr.Number))
	c.queue(&Task{Kind: TaskReloadRepo, Owner: pr.Owner, Name: pr.Name})
}

// ApplyPreview stores fetched preview content in the cache.
func (c *Controller) ApplyPreview(mode PreviewMode, id, content string, err error) {
	c.busy = false
	if err != nil {
		c.setTransient("preview failed: " + err.Error())
		return
	}
	c.cache.Put(mode, id, content)
	if !c.status.ExpiresAt.IsZero() {
		return
	}
	c.status = Status{}
}

// ApplyContributions stores the fetched calendar.
func (c *Controller) ApplyContributions(cal *models.ContributionCalendar, err error) {
	c.busy = false
	if err != nil {
		c.setTransient("contributions unavailable: " + err.Error())
		c.showContrib = false
		return
	}
	c.contrib = cal
	c.contribLoaded = true
	c.status = Status{}
}

// PreviewContent returns the cached content for the open pane of the
// selected record. The second result is false while the content is
// still loading.
func (c *Controller) PreviewContent() (string, bool) {
	pr, ok := c.Selected()
	if !ok || c.preview == PreviewOff {
		return "", false
	}
	return c.cache.Get(c.preview, pr.ID)
}

// EnsurePreview queues a content load for the open pane when it is not
// cached yet, and a calendar load when the contributions pane lacks
// current data. Called by the event loop after every applied task so a
// pane opened while another task ran still gets filled.
func (c *Controller) EnsurePreview() {
	c.ensureContributions()
	c.ensurePreview()
}

func (c *Controller) ensureContributions() {
	if !c.showContrib || c.contribLoaded || c.contribLogin == "" {
		return
	}
	if c.queue(&Task{Kind: TaskReloadContributions, Login: c.contribLogin}) && c.contrib == nil {
		c.setPersistent(fmt.Sprintf("loading contributions for %s...", c.contribLogin))
	}
}

func (c *Controller) ensurePreview() {
	if c.preview == PreviewOff {
		return
	}
	pr, ok := c.Selected()
	if !ok {
		return
	}
	if _, cached := c.cache.Get(c.preview, pr.ID); cached {
		return
	}
	if c.queue(&Task{Kind: TaskLoadPreview, PR: pr, Mode: c.preview}) {
		c.setPersistent(fmt.Sprintf("loading %s for #%d...", c.preview, pr.Number))
	}
}

// queue registers a task unless one is already pending or running.
func (c *Controller) queue(t *Task) bool {
	if c.busy || c.pending != nil {
		if t.Kind == TaskMerge || t.Kind == TaskApprove || t.Kind == TaskReloadAll {
			c.setTransient("another task is running")
		}
		return false
	}
	c.pending = t
	return true
}

func (c *Controller) setTransient(text string) {
	c.status = Status{Text: text, ExpiresAt: c.now().Add(c.statusTTL)}
}

func (c *Controller) setPersistent(text string) {
	c.status = Status{Text: text}
}

func findByID(prs []models.PullRequest, id string) int {
	if id == "" {
		return -1
	}
	for i, pr := range prs {
		if pr.ID == id {
			return i
		}
	}
	return -1
}

func clamp(i, n int) int {
	if n == 0 {
		return -1
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
