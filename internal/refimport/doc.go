// Package refimport validates the files a reference-genome manifest
// points at and, given a destination store, copies each valid record into
// the pipeline's reference layout.
package refimport
