package digest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"synctracker/internal/scheduler"
	"synctracker/pkg/log"

	cycleRepo "synctracker/internal/cycle/repository"
)

// DefaultSpec fires the digest every morning at 07:00 local time.
const DefaultSpec = "0 7 * * *"

// Digest periodically logs each user's current phase and the task
// categories that suit it. It is a log-only heartbeat; delivery to an
// external channel can hang off the same walk later.
type Digest struct {
	l        log.Logger
	anchors  cycleRepo.AnchorRepository
	resolver *scheduler.Resolver
	registry *scheduler.Registry
	c        *cron.Cron
	spec     string
	now      func() time.Time
}

// New creates a digest job. spec is a standard 5-field cron expression;
// empty means DefaultSpec.
func New(l log.Logger, registry *scheduler.Registry, anchors cycleRepo.AnchorRepository, spec string, loc *time.Location) *Digest {
	if spec == "" {
		spec = DefaultSpec
	}
	if loc == nil {
		loc = time.Local
	}
	return &Digest{
		l:        l,
		anchors:  anchors,
		resolver: scheduler.NewResolver(registry),
		registry: registry,
		c:        cron.New(cron.WithLocation(loc)),
		spec:     spec,
		now:      time.Now,
	}
}

// Start registers the cron entry and starts the scheduler.
func (d *Digest) Start(ctx context.Context) error {
	_, err := d.c.AddFunc(d.spec, func() { d.Run(ctx) })
	if err != nil {
		return fmt.Errorf("register digest cron %q: %w", d.spec, err)
	}
	d.c.Start()
	d.l.Infof(ctx, "daily digest scheduled with spec %q", d.spec)
	return nil
}

// Stop halts the cron scheduler and waits for a running digest to end.
func (d *Digest) Stop() {
	stopCtx := d.c.Stop()
	<-stopCtx.Done()
}

// Run walks every stored anchor once and logs the phase summary. It is
// exported so an operator endpoint or test can trigger it directly.
func (d *Digest) Run(ctx context.Context) {
	userIDs, err := d.anchors.ListUserIDs(ctx)
	if err != nil {
		d.l.Errorf(ctx, "digest: list users: %v", err)
		return
	}

	today := d.now()
	for _, userID := range userIDs {
		anchor, err := d.anchors.GetAnchor(ctx, userID)
		if err != nil {
			d.l.Errorf(ctx, "digest: anchor for %s: %v", userID, err)
			continue
		}

		profile, day := d.resolver.Resolve(anchor, today)
		categories := make([]string, 0)
		for _, aff := range d.registry.OptimalCategories(profile.Phase) {
			categories = append(categories, string(aff.Category))
		}
		d.l.Infof(ctx, "digest: user %s is on day %d (%s phase), good day for: %s",
			userID, day, profile.Phase, strings.Join(categories, ", "))
	}
}
