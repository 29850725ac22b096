// Package netlink models the fully meshed point-to-point network between
// hosts as a dense matrix of directed, capacity-1 links, each serializing
// the transfers that cross it.
package netlink
