// Package notify is the outward boundary: it maps reconciliation outcomes to
// user-visible desktop notifications and sound cues.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/tanabodee/attendly/internal/logger"
	"github.com/tanabodee/attendly/internal/reconcile"
	"github.com/tanabodee/attendly/internal/utils"
)

// CueKind selects which sound plays with a notification.
type CueKind string

const (
	CueSuccess CueKind = "success"
	CueWarning CueKind = "warning"
	CueNone    CueKind = "none"
)

// Notification is the (title, body, cue) tuple handed to the platform.
type Notification struct {
	Title string
	Body  string
	Cue   CueKind
}

// ForOutcome maps a reconciliation result to its notification. The second
// return is false for NoOutcomeYet, which emits nothing.
func ForOutcome(res reconcile.Result) (Notification, bool) {
	switch res.Outcome {
	case reconcile.MorningConfirmed:
		body := "Check-in recorded."
		if res.Matched != nil {
			body = fmt.Sprintf("Confirmed: %s", utils.RecordClock(res.Matched.Timestamp))
		}
		return Notification{Title: "Morning Check-In", Body: body, Cue: CueSuccess}, true
	case reconcile.MorningMissing:
		return Notification{
			Title: "Missing Morning Entry!",
			Body:  "It's past 08:00 and no entry found.",
			Cue:   CueWarning,
		}, true
	case reconcile.EveningConfirmed:
		return Notification{
			Title: "Work Completed",
			Body:  "You have successfully checked out.",
			Cue:   CueSuccess,
		}, true
	case reconcile.EveningMissing:
		return Notification{
			Title: "Missing Checkout!",
			Body:  "It's past 16:40. Don't forget to scan out!",
			Cue:   CueWarning,
		}, true
	default:
		return Notification{Cue: CueNone}, false
	}
}

// Notifier delivers notifications to the desktop and plays cues.
type Notifier struct {
	player *Player
}

func New() *Notifier {
	return &Notifier{player: NewPlayer()}
}

// Send shows the desktop notification, then plays its cue. customSound is
// the user's optional data-URL payload; it only ever replaces the success
// cue, warnings keep their distinct tone.
func (n *Notifier) Send(note Notification, customSound string) {
	if note.Title != "" {
		if err := beeep.Notify(note.Title, note.Body, ""); err != nil {
			logger.Warn("desktop notification failed", "title", note.Title, "error", err)
		}
	}
	n.PlayCue(note.Cue, customSound)
}

// PlayCue plays the sound for a cue kind without a notification, used by
// manual checks and the settings sound test.
func (n *Notifier) PlayCue(kind CueKind, customSound string) {
	if kind == CueNone {
		return
	}
	if err := n.player.Play(kind, customSound); err != nil {
		logger.Warn("sound cue failed", "kind", kind, "error", err)
	}
}
