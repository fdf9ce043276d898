// Package content provides the page model shown by the content pane and the
// sources that load it.
//
// A page is a tree of tabs, cards and coupons. Sources return whole pages:
// LoadPage either succeeds with a complete Page or fails, so the interface
// never has to display a half-loaded hierarchy.
//
// Two sources are provided:
//   - FixtureSource serves the JSON fixtures compiled into the binary
//   - StrandsSource fetches the same layout documents from the strands API
//
// Both decode the layout document with Decode, which keeps only COUPON cards
// and TAB tabs, in display order.
package content
