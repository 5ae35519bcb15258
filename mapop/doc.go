// Package mapop implements operations over mapping nodes: Merge
// folds override mappings into a base, Filter prunes top-level
// entries by key, type, null-or-emptiness or an expression.
package mapop
