// Package widgets provides the stock control set for the Rivet framework.
//
// Controls here are headless: they describe structure, naming, and
// interaction callbacks, and leave rendering to a host. Every control
// carries an optional Name that enrolls it in convention binding, and
// exposes its payloads through the core shape interfaces so scope
// traversal can walk logical content:
//
//   - View — boundary container bounding a binding scope
//   - Container, Panel, Column, Row — plain child/children composition
//   - Button, Expander — content controls (payloads typed any)
//   - ListView — item-collection control
//   - Text, TextField, Checkbox — leaf inputs and display
//
// Controls are explicit: a zero value means zero (an unnamed element, an
// empty caption, a disabled button), never "use a default".
package widgets
