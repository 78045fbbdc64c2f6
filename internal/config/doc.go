// Package config loads, merges and validates the deployment profile of the
// coffee-shop application together with the settings of the API server that
// serves it.
//
// Configuration is assembled from several layers. For every field the first
// layer that provides a non-empty value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path taken from -config / CONFIG)
//  4. Built-in defaults of the selected profile (PROFILE, "development" by default)
//
// The main entry points are [Load] and [GetConfig]. Both validate the merged
// result and fail with a [*ConfigurationError] naming every invalid field, so
// a misconfigured process refuses to start instead of failing on first use.
package config
