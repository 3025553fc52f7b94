// Package blank is an empty placeholder. It declares nothing and does nothing
// when imported.
package blank
