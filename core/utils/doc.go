// Package utils provides common utility functions for the invader-comparator
// application. It includes helper functions for lax type conversion used when
// decoding loosely typed payloads from the gallery API.
package utils
