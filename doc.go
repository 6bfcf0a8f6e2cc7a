// Package bist provides types and calculations for analyzing Borsa Istanbul
// equities from publicly available data sources. It is designed to be
// local-first and reproducible: every figure can be traced back to the raw
// series it was computed from.
//
// The core functionalities include:
//   - Return Simulation: reconstructing lump-sum and periodic-contribution
//     investment trajectories over a daily price/dividend/FX series, with or
//     without dividend reinvestment, producing a full date-indexed ledger in
//     Turkish lira and US dollars.
//   - Dividend Taxation: applying the historical Turkish withholding policy
//     to gross dividend amounts through an effective-date table.
//   - Financial Statements & Ratios: a line-item/period model of company
//     statements and the usual valuation, profitability, leverage and
//     liquidity ratios computed from it.
//   - Series Model: a clean, validated daily series contract implemented by
//     the data-provider subpackages (isyatirim, yahoo, kap).
//
// This package serves as the foundational logic for the `bist` command-line
// tool; the subpackages fetch, this package computes, the renderer displays.
package bist
