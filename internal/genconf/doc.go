// Package genconf renders the per-step configuration files of the
// annotation pipeline for one sample and indexes them in a master config.
package genconf
