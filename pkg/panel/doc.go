// Package panel is the recursive engine at the centre of the module: given a
// node's schemas, value tree and connection list it renders an editable
// control tree, gates connection-driven fields read-only, and synchronises
// every edit back into a fresh value tree handed to the owning editor.
package panel
