package change

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lattice-viz/lattice/errors"
)

// Sink receives change records and navigation events as they are produced.
// Implementations must not block the frame: a frame always runs to
// completion regardless of subscriber state.
type Sink interface {
	SendChange(Change)
	SendNav(NavEvent)
}

// NopSink discards everything. It is the default sink, so the controller
// has a single emission path whether or not a subscriber is registered.
type NopSink struct{}

func (NopSink) SendChange(Change) {}
func (NopSink) SendNav(NavEvent)  {}

// Policy selects what a ChannelSink does when a subscriber channel is full.
type Policy int

const (
	// DropWhenFull drops the record and increments a diagnostic counter.
	// This is the default: a slow subscriber must never fail the frame.
	DropWhenFull Policy = iota
	// BlockWhenFull blocks until the subscriber drains the channel. Only
	// for hosts that guarantee a live consumer.
	BlockWhenFull
)

// ChannelSink bridges records onto Go channels. Either channel may be nil,
// in which case that class of record is discarded silently.
type ChannelSink struct {
	changes chan<- Change
	navs    chan<- NavEvent
	policy  Policy
	logger  *zap.SugaredLogger

	droppedChanges atomic.Int64
	droppedNavs    atomic.Int64
}

// NewChannelSink creates a sink feeding the given channels under the given
// full-channel policy.
func NewChannelSink(changes chan<- Change, navs chan<- NavEvent, policy Policy, logger *zap.SugaredLogger) *ChannelSink {
	return &ChannelSink{
		changes: changes,
		navs:    navs,
		policy:  policy,
		logger:  logger.Named("change.sink"),
	}
}

// SendChange pushes one change record to the subscriber channel.
func (s *ChannelSink) SendChange(c Change) {
	if s.changes == nil {
		return
	}
	if s.policy == BlockWhenFull {
		s.changes <- c
		return
	}
	select {
	case s.changes <- c:
	default:
		dropped := s.droppedChanges.Add(1)
		s.logger.Warnw("Subscriber channel full, dropping change record",
			"kind", c.Kind.String(),
			"node", c.Node.String(),
			"total_drops", dropped,
		)
	}
}

// SendNav pushes one navigation event to the subscriber channel.
func (s *ChannelSink) SendNav(e NavEvent) {
	if s.navs == nil {
		return
	}
	if s.policy == BlockWhenFull {
		s.navs <- e
		return
	}
	select {
	case s.navs <- e:
	default:
		dropped := s.droppedNavs.Add(1)
		s.logger.Debugw("Navigation channel full, dropping event",
			"kind", e.Kind.String(),
			"total_drops", dropped,
		)
	}
}

// DroppedChanges returns how many change records were dropped on a full
// channel since the sink was created.
func (s *ChannelSink) DroppedChanges() int64 {
	return s.droppedChanges.Load()
}

// DroppedNavs returns how many navigation events were dropped on a full
// channel since the sink was created.
func (s *ChannelSink) DroppedNavs() int64 {
	return s.droppedNavs.Load()
}

// Err reports accumulated drops as a wrapped ErrChannelFull, or nil when
// every record was delivered. Hosts check it when a sink retires.
func (s *ChannelSink) Err() error {
	changes := s.droppedChanges.Load()
	navs := s.droppedNavs.Load()
	if changes == 0 && navs == 0 {
		return nil
	}
	return errors.WithMessagef(errors.ErrChannelFull,
		"%d change records and %d nav events dropped", changes, navs)
}
