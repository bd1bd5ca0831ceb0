package observe

import (
	"log"

	"github.com/katalvlaran/abcvrp/foodsource"
)

// Logger writes events as key=value lines:
//
//	fs_id=3 op=exploit outcome=rejected old_fitness=0.0714 fitness=0.0714 trial=4 exhausted=false
//	fs_id=3 op=randomize fitness=0.0714 trial=0 exhausted=false
type Logger struct {
	l *log.Logger

	// Quiet suppresses neutral and rejected exploitation steps.
	Quiet bool
}

// NewLogger returns a Logger writing through l, or through log.Default when l is nil.
func NewLogger(l *log.Logger) *Logger {
	if l == nil {
		l = log.Default()
	}
	return &Logger{l: l}
}

// Observe implements foodsource.Observer.
func (lg *Logger) Observe(e foodsource.Event) {
	switch e.Kind {
	case foodsource.KindExploit:
		if lg.Quiet && e.Outcome != foodsource.OutcomeImproved && !e.Exhausted {
			return
		}
		lg.l.Printf("fs_id=%d op=%s outcome=%s old_fitness=%.4g fitness=%.4g trial=%d exhausted=%t",
			e.ID, e.Kind, e.Outcome, e.OldFitness, e.Fitness, e.Trial, e.Exhausted)
	default:
		lg.l.Printf("fs_id=%d op=%s fitness=%.4g trial=%d exhausted=%t",
			e.ID, e.Kind, e.Fitness, e.Trial, e.Exhausted)
	}
}

// Multi forwards each event to every non-nil observer in order.
type Multi []foodsource.Observer

// Observe implements foodsource.Observer.
func (m Multi) Observe(e foodsource.Event) {
	for _, o := range m {
		if o != nil {
			o.Observe(e)
		}
	}
}
