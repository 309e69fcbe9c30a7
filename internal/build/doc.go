// Package build runs the generation pipeline: resolve the theme options
// provider, assemble the site configuration, validate it and write it out.
package build
