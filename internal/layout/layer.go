package layout

// Draw layers, lowest first. Renderers draw in ascending layer order so the
// highest layer ends up on top.
const (
	LayerIndoor            = 2
	LayerIndoorAssociated  = 3
	LayerOutdoor           = 6
	LayerOutdoorAssociated = 7
	LayerSessionMarker     = 8
)

// Layer returns the draw layer for an entity standing outdoors or indoors,
// with or without an association.
func Layer(outdoors, associated bool) int {
	base := LayerIndoor
	if outdoors {
		base = LayerOutdoor
	}
	if associated {
		base++
	}
	return base
}
