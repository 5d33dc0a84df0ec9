// Package blockdown renders a small block-structured text dialect to HTML.
//
// The dialect knows headings ("# ", "## ", "### "), emphasis ("*em*",
// "**strong**"), pipe tables with a "| --- |" separator line, "* " lists
// and "1. " lists. Everything else is passed through as text.
//
// Rendering is a fixed sequence of rewrite stages over the whole document:
// headings, emphasis, tables, unordered lists, ordered lists and finally
// blank-line normalization. Each stage works on the output of the one
// before it.
//
// The simplest way to invoke blockdown is to call Render, or RenderMode to
// choose between preview markup and an escaped raw transcript. Run accepts
// options to pick the enabled stages, the renderer and the mode.
//
// If you're interested in calling blockdown from the command line, see
// cmd/blockdown.
package blockdown
