package gallery

import "github.com/go-mosaic/mosaic/pkg/grid"

// ToItems converts gallery summaries to grid items, keyed by path. Every
// gallery is wide-eligible: its true cover shape is unknown until the
// thumbnail loads, and a collaborator reports it then.
func ToItems(galleries []Summary) []grid.Item {
	items := make([]grid.Item, len(galleries))
	for i, g := range galleries {
		items[i] = grid.Item{Key: g.Path, WideEligible: true}
	}
	return items
}

// ToLeading converts folder nodes to leading items, keyed by path. Folders
// render at a fixed height, so they are never wide-eligible.
func ToLeading(folders []Folder) []grid.LeadingItem {
	leading := make([]grid.LeadingItem, len(folders))
	for i, f := range folders {
		leading[i] = grid.LeadingItem{Key: f.Path, Title: f.Name}
	}
	return leading
}
