package view

// SettingsInteraction gates which pointer interactions mutate graph data.
// The zero value disables everything.
type SettingsInteraction struct {
	// ClickingEnabled emits Clicked/DoubleClicked records on node clicks.
	ClickingEnabled bool
	// SelectionEnabled lets clicks toggle the persistent selected flag.
	SelectionEnabled bool
	// SelectionMultiEnabled allows more than one node to be selected at
	// once. Implies selection for clickability gating.
	SelectionMultiEnabled bool
	// DraggingEnabled lets drags started on a node move it.
	DraggingEnabled bool
}

// SettingsNavigation gates viewport navigation.
type SettingsNavigation struct {
	// ZoomAndPanEnabled allows zoom gestures and empty-canvas pan drags.
	ZoomAndPanEnabled bool
	// FitToScreenEnabled re-fits the graph to the canvas every frame, not
	// just on the first one.
	FitToScreenEnabled bool
	// ZoomSpeed is the per-gesture zoom step magnitude.
	ZoomSpeed float64
	// ScreenPadding is the bounding-box inflation fraction used by
	// fit-to-screen (0.3 pads by 30%).
	ScreenPadding float64
}

// DefaultNavigation returns the stock navigation settings: zoom speed 0.1,
// 30% fit padding, interactive navigation on.
func DefaultNavigation() SettingsNavigation {
	return SettingsNavigation{
		ZoomAndPanEnabled: true,
		ZoomSpeed:         0.1,
		ScreenPadding:     0.3,
	}
}

// SettingsStyle holds the style parameters computed state derives per-node
// geometry from.
type SettingsStyle struct {
	// NodeRadius is the base node radius in graph units.
	NodeRadius float64
	// EdgeRadiusWeight grows a node's radius per incident edge, so highly
	// connected nodes render (and hit-test) larger.
	EdgeRadiusWeight float64
	// LabelCharWidth is the horizontal extent one label character adds to
	// the node's bounding box when labels are visible.
	LabelCharWidth float64
	// LabelsVisible folds label extents into the graph bounding box.
	LabelsVisible bool
}

// DefaultStyle returns the stock style settings.
func DefaultStyle() SettingsStyle {
	return SettingsStyle{
		NodeRadius:       5,
		EdgeRadiusWeight: 1,
		LabelCharWidth:   4,
	}
}
