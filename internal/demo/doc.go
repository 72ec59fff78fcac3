// Package demo is the nested click-counter application served by
// "tally serve" and driven by "tally demo".
//
// The page has a header with the grand totals and a number of sections.
// Each section is a chain of nested levels; every level opens a scope of
// the Clicks and Points counters, shows both counts and has a "+1" button
// (Clicks) and a "+5" button (Points). A click on a level therefore shows
// up on that level, on every level above it and in the header, but never
// in sibling sections or in the other counter. Hiding a section unmounts
// its scopes; showing it again starts them at zero.
package demo
