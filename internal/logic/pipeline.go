package logic

import "github.com/matchtape/stats-api/internal/models"

// Derive runs the full derivation pass on a sidecar in place: normalize,
// accumulate, derive outcome, write the derived cache fields back. The
// result is a complete, self-consistent payload suitable for atomic
// replacement of the persisted record.
//
// Every stage is idempotent, so Derive is safe to re-run on its own output;
// the service re-derives on every edit rather than patching state.
func Derive(sc *models.Sidecar) models.Outcome {
	homeIsAthlete := sc.HomeSideIsAthlete()
	events := Normalize(sc.Events, homeIsAthlete)
	events = Accumulate(events)
	sc.Events = events

	out := DeriveOutcome(events, homeIsAthlete)
	sc.ApplyOutcome(out)
	return out
}
