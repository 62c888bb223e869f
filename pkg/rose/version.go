package rose

// Version is the release version of the gildedrose module.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/gildedrose"
