// Package boutique implements the bookkeeping of a small farm shop.
//
// The shop data lives in four flat CSV tables (clients, produits,
// depenses, ventes). Each table is owned by a cached record store that
// reloads from disk before any write, assigns monotonic identifiers and
// rewrites the whole file on every mutation. On top of the stores, a
// referential resolver translates human-entered names into identifiers,
// and a reporting engine derives profit, revenue and expense views by
// joining and grouping the tables.
package boutique
