package layout

import "github.com/splitcore/splitcore/internal/snapshot"

// SemanticColor is re-exported so renderer code only needs to import
// layout.
type SemanticColor = snapshot.SemanticColor
