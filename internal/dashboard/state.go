package dashboard

import "time"

type loadPhase int

const (
	phaseIdle loadPhase = iota
	phaseLoading
	phaseLoaded
	phaseError
)

// LoadingState tracks where a panel's most recent fetch stands. It is
// observational only; it never gates whether a fetch may start.
type LoadingState struct {
	phase   loadPhase
	at      time.Time
	message string
}

type loadEventKind int

const (
	eventStartedFetch loadEventKind = iota
	eventSucceeded
	eventFailed
)

// LoadEvent is one input to the loading state machine.
type LoadEvent struct {
	kind    loadEventKind
	at      time.Time
	message string
}

// StartedFetch reports that a fetch is about to go out.
func StartedFetch() LoadEvent {
	return LoadEvent{kind: eventStartedFetch}
}

// Succeeded reports a completed fetch at the given time.
func Succeeded(at time.Time) LoadEvent {
	return LoadEvent{kind: eventSucceeded, at: at}
}

// Failed reports a failed fetch with the message to display.
func Failed(message string) LoadEvent {
	return LoadEvent{kind: eventFailed, message: message}
}

// Transition applies ev and returns the next state. StartedFetch always
// yields Loading regardless of the prior state; overlap prevention is the
// panel's job, not this layer's.
func (s LoadingState) Transition(ev LoadEvent) LoadingState {
	switch ev.kind {
	case eventStartedFetch:
		return LoadingState{phase: phaseLoading}
	case eventSucceeded:
		return LoadingState{phase: phaseLoaded, at: ev.at}
	case eventFailed:
		return LoadingState{phase: phaseError, message: ev.message}
	default:
		return s
	}
}

// Err returns the error message when the state is Error.
func (s LoadingState) Err() string {
	if s.phase != phaseError {
		return ""
	}
	return s.message
}

// LoadedAt returns the completion time of the last successful fetch.
func (s LoadingState) LoadedAt() (time.Time, bool) {
	if s.phase != phaseLoaded {
		return time.Time{}, false
	}
	return s.at, true
}

// String renders the status line shown in a panel's title bar.
func (s LoadingState) String() string {
	switch s.phase {
	case phaseIdle:
		return "Idle"
	case phaseLoading:
		return "Loading"
	case phaseLoaded:
		return "Last refreshed at " + s.at.Local().Format("2006-01-02 15:04:05")
	case phaseError:
		return s.message
	default:
		return ""
	}
}
