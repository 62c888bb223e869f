// Package types defines the Item entity, the closed set of item categories,
// the quality bounds and the run configuration for the Gilded Rose inventory.
package types
