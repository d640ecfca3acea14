// Package etfnav reconciles the net asset value of an exchange traded fund
// against the value implied by the latest prices of its constituents.
//
// The core functionalities include:
//   - Holdings Decoding: Reading the loosely typed holdings tree published by
//     the fund's web source into a flat list of typed Holding records.
//   - Symbol Normalization: Mapping exchange-native tickers (e.g. "BRK/B") into
//     the flat form expected by the quote feed (e.g. "BRK.B").
//   - Quote Correlation: Splitting a batch of quotes into the fund's own quote,
//     the constituents' quotes, and the symbols the feed did not know about.
//   - Merging: Joining holdings and quotes into an ordered set of records.
//   - Reconciliation: Recomputing every holding's value from its latest close,
//     deriving the implied NAV per share, and ranking the discrepancies.
//
// Retrieving the holdings and the quotes is delegated to a FundSource and a
// QuoteFeed (see packages schwab and alpaca). This package serves as the
// foundational logic for the `navcheck` command-line tool.
package etfnav
