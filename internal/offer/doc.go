// Package offer defines the canonical offer draft edited by the creation
// wizard, the closed set of field-update actions applied to it, and the
// partial patches produced by the input collaborators.
package offer
