package change_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lattice-viz/lattice/change"
	"github.com/lattice-viz/lattice/errors"
	"github.com/lattice-viz/lattice/geom"
	"github.com/lattice-viz/lattice/graph"
)

func TestChannelSinkDelivers(t *testing.T) {
	changes := make(chan change.Change, 4)
	navs := make(chan change.NavEvent, 4)
	sink := change.NewChannelSink(changes, navs, change.DropWhenFull, zap.NewNop().Sugar())

	id := graph.NodeID{Index: 1}
	sink.SendChange(change.NewSelection(id, false, true))
	sink.SendNav(change.NewPan(geom.V(3, 4)))

	c := <-changes
	assert.Equal(t, change.SelectionChanged, c.Kind)
	assert.Equal(t, id, c.Node)
	assert.Equal(t, false, c.Before)
	assert.Equal(t, true, c.After)

	e := <-navs
	assert.Equal(t, change.Pan, e.Kind)
	assert.Equal(t, geom.V(3, 4), e.PanDelta)
	assert.Zero(t, sink.DroppedChanges())
}

func TestChannelSinkDropsWhenFull(t *testing.T) {
	changes := make(chan change.Change, 1)
	sink := change.NewChannelSink(changes, nil, change.DropWhenFull, zap.NewNop().Sugar())

	id := graph.NodeID{}
	sink.SendChange(change.NewClicked(id))
	sink.SendChange(change.NewClicked(id)) // channel full, dropped
	sink.SendChange(change.NewClicked(id)) // dropped

	assert.Equal(t, int64(2), sink.DroppedChanges())
	assert.Len(t, changes, 1, "frame never blocked, one record delivered")
}

func TestChannelSinkErrReportsDrops(t *testing.T) {
	changes := make(chan change.Change, 1)
	sink := change.NewChannelSink(changes, nil, change.DropWhenFull, zap.NewNop().Sugar())

	assert.NoError(t, sink.Err())

	sink.SendChange(change.NewClicked(graph.NodeID{}))
	sink.SendChange(change.NewClicked(graph.NodeID{})) // dropped

	err := sink.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrChannelFull))
}

func TestChannelSinkNavDropCountsSeparately(t *testing.T) {
	navs := make(chan change.NavEvent, 1)
	sink := change.NewChannelSink(nil, navs, change.DropWhenFull, zap.NewNop().Sugar())

	sink.SendNav(change.NewZoom(0.1))
	sink.SendNav(change.NewZoom(0.1))

	assert.Equal(t, int64(1), sink.DroppedNavs())
	assert.Zero(t, sink.DroppedChanges())
}

func TestChannelSinkNilChannels(t *testing.T) {
	sink := change.NewChannelSink(nil, nil, change.DropWhenFull, zap.NewNop().Sugar())

	// Must be a silent no-op, not a panic, and not counted as a drop
	sink.SendChange(change.NewClicked(graph.NodeID{}))
	sink.SendNav(change.NewZoom(0.5))

	assert.Zero(t, sink.DroppedChanges())
	assert.Zero(t, sink.DroppedNavs())
}

func TestChannelSinkBlockPolicy(t *testing.T) {
	changes := make(chan change.Change, 1)
	sink := change.NewChannelSink(changes, nil, change.BlockWhenFull, zap.NewNop().Sugar())

	done := make(chan struct{})
	go func() {
		sink.SendChange(change.NewClicked(graph.NodeID{}))
		sink.SendChange(change.NewClicked(graph.NodeID{})) // blocks until drained
		close(done)
	}()

	first := <-changes
	require.Equal(t, change.Clicked, first.Kind)
	<-changes
	<-done

	assert.Zero(t, sink.DroppedChanges(), "block policy never drops")
}

func TestNopSink(t *testing.T) {
	var sink change.Sink = change.NopSink{}
	sink.SendChange(change.NewMoved(graph.NodeID{}, geom.V(0, 0), geom.V(1, 1)))
	sink.SendNav(change.NewPan(geom.V(1, 1)))
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "selection_changed", change.SelectionChanged.String())
	assert.Equal(t, "clicked", change.Clicked.String())
	assert.Equal(t, "double_clicked", change.DoubleClicked.String())
	assert.Equal(t, "dragged_changed", change.DraggedChanged.String())
	assert.Equal(t, "location_moved", change.LocationMoved.String())
	assert.Equal(t, "pan", change.Pan.String())
	assert.Equal(t, "zoom", change.Zoom.String())
}
