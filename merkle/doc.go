// Package merkle implements the commitment subsystem of a verifiable remote
// file store: a fixed-width digest primitive, an append-only Merkle tree that
// retains every interior node, a compact incremental ("light") variant that
// retains only the O(log n) frontier needed to keep appending, and the
// inclusion-proof types used to tie a downloaded file back to a retained
// root.
//
// The tree is not implemented according to RFC 6962; unlike that scheme (and
// unlike this package's teacher), there is no domain-separation byte
// prepended to leaf or node hashes. A leaf digest is exactly Sum(data), and
// an interior node is exactly Combine(left, right) = Sum(left || right). Odd
// levels are padded by duplicating the last node against itself rather than
// introducing a sentinel value.
package merkle
