// Package split compiles a windowgram into a sequence of binary splits.
//
// Terminal multiplexers build layouts with a single primitive: divide an
// existing region in two along one axis. [Compile] finds an ordered sequence
// of such divisions that reproduces a non-overlapping windowgram, or reports
// the regions that cannot be produced this way.
//
// # Algorithm
//
// The root region covers the whole windowgram and is named by linkid
// [RootLinkID]. Decomposing a region tries, in order:
//
//  1. Perfect fit: an unconsumed pane whose box equals the region is linked
//     to the region's linkid.
//  2. Clean break: for each unconsumed pane intersecting the region (scan
//     order), each of its top, bottom, left and right edges that lies inside
//     the region is tested as a split line. A line is clean when the panes
//     with an edge on it cover the full length of the region; no pane then
//     straddles the line. The first clean line splits the region; the
//     parent keeps the top or left part.
//  3. Otherwise the region is recorded as unsupported.
//
// # Link Table
//
// Every region has a destination index: its position in the multiplexer's
// pane enumeration. Splitting a region whose index is i inserts the new
// region at i+1, so every existing region with an index above i moves up by
// one before the recursion continues. [Plan.Links] holds the final table.
//
// # Canvas
//
// Sizes and percentages are reported for a target canvas (for example the
// terminal size in cells). Region edges are mapped with
// floor(edge * canvas / windowgram).
package split
