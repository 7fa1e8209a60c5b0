// Package portfel provides the core logic of a serverless investment
// portfolio tracker: an in-memory portfolio of heterogeneous assets
// (shares, bonds, currencies, cryptos, metals, deposits, real estate,
// businesses) and a codec that packs the whole portfolio into a single
// URL-safe share token. The URL is the storage; there is no backend.
//
// The main functional areas are:
//   - Asset Model: a tagged union over a closed set of asset kinds,
//     with compile-checkable code tables for every wire tag.
//   - Share Codec: positional, quantized, deflate-compressed encoding
//     of a portfolio into a token that fits a ~2000 character URL,
//     and its fail-soft inverse.
//   - Share Links: assembling the final URL with a cosmetic short id
//     and the two-stage length budget fallback.
//   - Portfolio Store: the ordered in-memory position list with merge
//     semantics for repeated market assets.
//   - Valuation: position values, totals and per-kind allocation in
//     rubles, including the fixed-face-value bond formula.
//   - Persistence: a human-readable JSONL working-file format for the
//     pfl command line tool.
//
// This package serves as the foundational logic for the `pfl` command
// line tool.
package portfel
