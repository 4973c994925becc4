// Package config provides the pipeline configuration surface: input
// and output locations, funnel stage column names, and the outlier
// thresholds that drive bot filtering and winsorization.
//
// Configuration is layered: documented defaults, then an optional
// YAML file, then GA360-prefixed environment variables. Every
// component receives its thresholds from here rather than from
// package-level constants, so single runs can override any of them.
package config
