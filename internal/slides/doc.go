// Package slides wraps the Google Slides service: a thin client over the
// generated API, summary extraction over the presentation tree, and
// normalization of remote API failures into the tool error taxonomy.
package slides
