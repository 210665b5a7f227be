// Package inactivation implements stabilizer-inactivation postprocessing:
// when a plain BP run fails to converge, it ranks checks by how unreliable
// their neighborhood's posteriors are, tries masking out the least reliable
// check's local cluster and re-running BP on the residual syndrome, and
// fills in the masked-out bits by solving a small GF(2) linear system built
// from the cluster's incidence structure.
package inactivation
