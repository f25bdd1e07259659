// Package config loads and validates the InletPara YAML configuration:
// HTTP port, session sizing, measurement defaults, and the optional seed list
// of inlet configurations.
//
// Watch provides fsnotify-based hot reload; a reload that fails to parse is
// logged and the previous configuration stays active.
package config
