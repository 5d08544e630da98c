// Package render serializes the live render tree to HTML. It is used by
// the demo server to send the initial page and to push re-rendered
// fragments after each reactive update.
//
// Comment nodes are emitted as HTML comments so that conditional-binding
// placeholders survive serialization and the client-side fragment swap.
package render
